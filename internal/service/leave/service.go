package leave

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pulseward/icu-backend-go/internal/domain/leave"
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/domain/staff"
	"github.com/pulseward/icu-backend-go/internal/pkg/orgtime"
	"github.com/pulseward/icu-backend-go/internal/pkg/sse"
)

type LeaveServiceImpl struct {
	leave.TimeOffRepository
	staff.StaffRepository
	remote    schedule.ScheduleRepository
	overrides schedule.OverrideStore
	hub       *sse.Hub
	logger    *slog.Logger
}

func NewLeaveService(
	timeOffRepo leave.TimeOffRepository,
	staffRepo staff.StaffRepository,
	remote schedule.ScheduleRepository,
	overrides schedule.OverrideStore,
	hub *sse.Hub,
	logger *slog.Logger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		TimeOffRepository: timeOffRepo,
		StaffRepository:   staffRepo,
		remote:            remote,
		overrides:         overrides,
		hub:               hub,
		logger:            logger,
	}
}

// ExpandDateRange returns one canonical date key per day of the inclusive
// [startDate, endDate] range. Both bounds must already be validated.
func ExpandDateRange(startDate, endDate string) ([]string, error) {
	start, err := orgtime.ParseDateKey(startDate)
	if err != nil {
		return nil, err
	}
	end, err := orgtime.ParseDateKey(endDate)
	if err != nil {
		return nil, err
	}

	var keys []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		keys = append(keys, orgtime.DateKey(d))
	}
	return keys, nil
}

// RequestTimeOff implements leave.LeaveService.
func (s *LeaveServiceImpl) RequestTimeOff(ctx context.Context, req leave.RequestTimeOffRequest) (leave.TimeOffResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.TimeOffResponse{}, err
	}

	if _, err := s.StaffRepository.GetByID(ctx, req.StaffID); err != nil {
		return leave.TimeOffResponse{}, err
	}

	dateKeys, err := ExpandDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return leave.TimeOffResponse{}, err
	}

	entries := make(map[string]schedule.Entry, len(dateKeys))
	for _, key := range dateKeys {
		entries[key] = schedule.TimeOffEntry(req.Type, req.Reason)
	}

	record := leave.TimeOffRequestRecord{
		ID:        uuid.NewString(),
		StaffID:   req.StaffID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Type:      leave.TimeOffType(req.Type),
		Reason:    req.Reason,
	}

	// Time off feeds approval workflows outside this service, so the remote
	// writes must succeed. No local-only fallback here.
	record, err = s.TimeOffRepository.CreateRequest(ctx, record)
	if err != nil {
		s.logger.Error("failed to store time off request",
			slog.String("staff_id", req.StaffID),
			slog.Any("error", err),
		)
		return leave.TimeOffResponse{}, leave.ErrTimeOffPersistFailed
	}

	if err := s.remote.UpsertMany(ctx, req.StaffID, entries); err != nil {
		s.logger.Error("failed to write time off schedule entries",
			slog.String("staff_id", req.StaffID),
			slog.Any("error", err),
		)
		return leave.TimeOffResponse{}, leave.ErrTimeOffPersistFailed
	}

	// Prime the overrides so the dashboard shows the leave without waiting
	// for a remote refetch. Failure only costs freshness.
	if err := s.overrides.SetMany(ctx, req.StaffID, entries); err != nil {
		s.logger.Warn("failed to prime local overrides with time off",
			slog.String("staff_id", req.StaffID),
			slog.Any("error", err),
		)
	}

	s.hub.Broadcast(sse.Event{
		Event: "time_off_requested",
		Data: map[string]interface{}{
			"staff_id":   req.StaffID,
			"start_date": req.StartDate,
			"end_date":   req.EndDate,
			"type":       req.Type,
		},
	})

	return leave.TimeOffResponse{
		RequestID: record.ID,
		StaffID:   req.StaffID,
		Schedules: entries,
	}, nil
}

// ListByStaff implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByStaff(ctx context.Context, staffID string) ([]leave.TimeOffRequestRecord, error) {
	if _, err := s.StaffRepository.GetByID(ctx, staffID); err != nil {
		return nil, err
	}
	return s.TimeOffRepository.ListByStaff(ctx, staffID)
}
