package staff

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pulseward/icu-backend-go/internal/domain/duty"
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/domain/staff"
)

type StaffServiceImpl struct {
	staff.StaffRepository
	duties duty.DutyService
	logger *slog.Logger
}

func NewStaffService(staffRepo staff.StaffRepository, duties duty.DutyService, logger *slog.Logger) staff.StaffService {
	return &StaffServiceImpl{
		StaffRepository: staffRepo,
		duties:          duties,
		logger:          logger,
	}
}

func toStaffResponse(member staff.StaffMember, today *duty.CurrentShiftInfo) staff.StaffResponse {
	resp := staff.StaffResponse{
		ID:           member.ID,
		FullName:     member.FullName,
		Role:         string(member.Role),
		IsOnDuty:     member.IsOnDuty,
		CurrentShift: string(member.CurrentShift),
		Department:   member.Department,
		Phone:        member.Phone,
		CreatedAt:    member.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    member.UpdatedAt.Format(time.RFC3339),
	}
	if today != nil {
		entry := shiftInfoToEntry(today)
		resp.TodayEntry = &entry
	}
	return resp
}

func shiftInfoToEntry(info *duty.CurrentShiftInfo) schedule.Entry {
	switch info.Kind {
	case duty.KindLeave:
		return schedule.Entry{Kind: schedule.EntryLeave, LeaveType: info.LeaveType}
	case duty.KindTimeOff:
		return schedule.Entry{Kind: schedule.EntryTimeOff, LeaveType: info.LeaveType}
	case duty.KindAbsent:
		return schedule.AbsentEntry()
	default:
		return schedule.Entry{Kind: schedule.EntryShift, Shift: info.Shift}
	}
}

// Create implements staff.StaffService.
func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	member := staff.StaffMember{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Role:         staff.Role(req.Role),
		IsOnDuty:     false,
		CurrentShift: schedule.ShiftOff,
		Department:   req.Department,
		Phone:        req.Phone,
	}

	member, err := s.StaffRepository.Create(ctx, member)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(member, nil), nil
}

// Get implements staff.StaffService.
func (s *StaffServiceImpl) Get(ctx context.Context, id string) (staff.StaffResponse, error) {
	member, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	info, err := s.duties.EvaluateFor(ctx, member)
	if err != nil {
		// The overview still renders without today's evaluation.
		s.logger.Warn("failed to evaluate today's schedule",
			slog.String("staff_id", member.ID),
			slog.Any("error", err),
		)
	}

	return toStaffResponse(member, info), nil
}

// List implements staff.StaffService.
func (s *StaffServiceImpl) List(ctx context.Context, filter staff.StaffFilter) (staff.ListStaffResponse, error) {
	if err := filter.Validate(); err != nil {
		return staff.ListStaffResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	members, total, err := s.StaffRepository.List(ctx, filter)
	if err != nil {
		return staff.ListStaffResponse{}, err
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, member := range members {
		info, err := s.duties.EvaluateFor(ctx, member)
		if err != nil {
			s.logger.Warn("failed to evaluate today's schedule",
				slog.String("staff_id", member.ID),
				slog.Any("error", err),
			)
		}
		responses = append(responses, toStaffResponse(member, info))
	}

	return staff.ListStaffResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Staff:      responses,
	}, nil
}

// Update implements staff.StaffService.
func (s *StaffServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	member, err := s.StaffRepository.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Role != nil {
		member.Role = staff.Role(*req.Role)
	}
	if req.Department != nil {
		member.Department = req.Department
	}
	if req.Phone != nil {
		member.Phone = req.Phone
	}

	if err := s.StaffRepository.Update(ctx, member); err != nil {
		return staff.StaffResponse{}, err
	}

	return toStaffResponse(member, nil), nil
}

// Delete implements staff.StaffService.
func (s *StaffServiceImpl) Delete(ctx context.Context, id string) error {
	return s.StaffRepository.Delete(ctx, id)
}
