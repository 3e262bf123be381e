package duty

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulseward/icu-backend-go/internal/domain/duty"
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/domain/staff"
	"github.com/pulseward/icu-backend-go/internal/pkg/keymutex"
	"github.com/pulseward/icu-backend-go/internal/pkg/orgtime"
	"github.com/pulseward/icu-backend-go/internal/pkg/sse"
)

type DutyServiceImpl struct {
	staff.StaffRepository
	schedules  schedule.ScheduleService
	overrides  schedule.OverrideStore
	remote     schedule.ScheduleRepository
	staffLocks *keymutex.KeyedMutex
	hub        *sse.Hub
	logger     *slog.Logger
}

func NewDutyService(
	staffRepo staff.StaffRepository,
	schedules schedule.ScheduleService,
	overrides schedule.OverrideStore,
	remote schedule.ScheduleRepository,
	staffLocks *keymutex.KeyedMutex,
	hub *sse.Hub,
	logger *slog.Logger,
) duty.DutyService {
	return &DutyServiceImpl{
		StaffRepository: staffRepo,
		schedules:       schedules,
		overrides:       overrides,
		remote:          remote,
		staffLocks:      staffLocks,
		hub:             hub,
		logger:          logger,
	}
}

// EvaluateFor implements duty.DutyService.
func (s *DutyServiceImpl) EvaluateFor(ctx context.Context, member staff.StaffMember) (*duty.CurrentShiftInfo, error) {
	merged, err := s.schedules.MergedSchedule(ctx, member.ID)
	if err != nil {
		return nil, err
	}

	entry, ok := merged[orgtime.Today()]
	if !ok {
		return nil, nil
	}

	return EvaluateToday(&entry, string(member.Role), orgtime.Now()), nil
}

// ToggleDuty implements duty.DutyService.
func (s *DutyServiceImpl) ToggleDuty(ctx context.Context, staffID string) (duty.ToggleDutyResponse, error) {
	// Toggles and schedule assignments for the same staff member share this
	// lock; different staff members proceed in parallel.
	unlock := s.staffLocks.Lock(staffID)
	defer unlock()

	member, err := s.StaffRepository.GetByID(ctx, staffID)
	if err != nil {
		return duty.ToggleDutyResponse{}, err
	}

	info, err := s.EvaluateFor(ctx, member)
	if err != nil {
		return duty.ToggleDutyResponse{}, err
	}

	var resp duty.ToggleDutyResponse
	if member.IsOnDuty {
		resp, err = s.clockOut(ctx, member, info)
	} else {
		resp, err = s.clockIn(ctx, member, info)
	}
	if err != nil {
		return duty.ToggleDutyResponse{}, err
	}

	s.hub.Broadcast(sse.Event{
		Event: "duty_changed",
		Data:  resp,
	})

	return resp, nil
}

func (s *DutyServiceImpl) clockIn(ctx context.Context, member staff.StaffMember, info *duty.CurrentShiftInfo) (duty.ToggleDutyResponse, error) {
	if info != nil && (info.Kind == duty.KindLeave || info.Kind == duty.KindTimeOff) {
		return duty.ToggleDutyResponse{}, duty.ErrOnLeaveToday
	}
	if !info.ClockInEligible() {
		return duty.ToggleDutyResponse{}, duty.ErrNoScheduledShift
	}

	updated, err := s.StaffRepository.UpdateDutyStatus(ctx, member.ID, true, info.Shift)
	if err != nil {
		s.logger.Error("failed to persist clock-in",
			slog.String("staff_id", member.ID),
			slog.Any("error", err),
		)
		return duty.ToggleDutyResponse{}, duty.ErrPersistenceFailed
	}

	return duty.ToggleDutyResponse{
		StaffID:      updated.ID,
		IsOnDuty:     updated.IsOnDuty,
		CurrentShift: string(updated.CurrentShift),
		ShiftInfo:    info,
	}, nil
}

// clockOut takes the member off duty. Leaving while the scheduled shift is
// still active records an absence for today; clocking out after the shift
// has ended is a plain end-of-day action. Clock-out never fails on schedule
// grounds, only on persistence.
func (s *DutyServiceImpl) clockOut(ctx context.Context, member staff.StaffMember, info *duty.CurrentShiftInfo) (duty.ToggleDutyResponse, error) {
	today := orgtime.Today()
	recordAbsence := info != nil && info.Kind == duty.KindShift && info.IsCurrentTime

	if recordAbsence {
		// Optimistic: the absence goes into the local override before the
		// duty flag is persisted, and is rolled back if that write fails.
		if err := s.overrides.Set(ctx, member.ID, today, schedule.AbsentEntry()); err != nil {
			return duty.ToggleDutyResponse{}, fmt.Errorf("failed to record absence: %w", err)
		}
	}

	updated, err := s.StaffRepository.UpdateDutyStatus(ctx, member.ID, false, schedule.ShiftOff)
	if err != nil {
		if recordAbsence {
			if rbErr := s.overrides.Delete(ctx, member.ID, today); rbErr != nil {
				s.logger.Error("failed to roll back absence override",
					slog.String("staff_id", member.ID),
					slog.Any("error", rbErr),
				)
			}
		}
		s.logger.Error("failed to persist clock-out",
			slog.String("staff_id", member.ID),
			slog.Any("error", err),
		)
		return duty.ToggleDutyResponse{}, duty.ErrPersistenceFailed
	}

	if recordAbsence {
		// Best-effort remote sync; the local override already holds the
		// absence and wins at merge time.
		go func() {
			syncCtx := context.WithoutCancel(ctx)
			if err := s.remote.Upsert(syncCtx, member.ID, today, schedule.AbsentEntry()); err != nil {
				s.logger.Error("remote absence sync failed",
					slog.String("staff_id", member.ID),
					slog.Any("error", err),
				)
			}
		}()
	}

	return duty.ToggleDutyResponse{
		StaffID:         updated.ID,
		IsOnDuty:        updated.IsOnDuty,
		CurrentShift:    string(updated.CurrentShift),
		AbsenceRecorded: recordAbsence,
		ShiftInfo:       info,
	}, nil
}
