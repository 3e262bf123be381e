package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/domain/staff"
	"github.com/pulseward/icu-backend-go/internal/pkg/keymutex"
	"github.com/pulseward/icu-backend-go/internal/pkg/orgtime"
	"github.com/pulseward/icu-backend-go/internal/pkg/sse"
)

type ScheduleServiceImpl struct {
	remote schedule.ScheduleRepository
	local  schedule.OverrideStore
	staff.StaffRepository
	staffLocks *keymutex.KeyedMutex
	hub        *sse.Hub
	logger     *slog.Logger
}

func NewScheduleService(
	remote schedule.ScheduleRepository,
	local schedule.OverrideStore,
	staffRepo staff.StaffRepository,
	staffLocks *keymutex.KeyedMutex,
	hub *sse.Hub,
	logger *slog.Logger,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		remote:          remote,
		local:           local,
		StaffRepository: staffRepo,
		staffLocks:      staffLocks,
		hub:             hub,
		logger:          logger,
	}
}

// MergedSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) MergedSchedule(ctx context.Context, staffID string) (map[string]schedule.Entry, error) {
	merged := make(map[string]schedule.Entry)

	remote, err := s.remote.GetByStaff(ctx, staffID)
	if err != nil {
		// Degrade to local-only data rather than failing the read. The
		// overrides hold everything recorded on this side since the outage.
		s.logger.Warn("remote schedule fetch failed, serving local overrides only",
			slog.String("staff_id", staffID),
			slog.Any("error", err),
		)
	} else {
		for dateKey, entry := range remote {
			merged[dateKey] = entry
		}
	}

	local, err := s.local.GetByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to read local schedule overrides: %w", err)
	}
	for dateKey, entry := range local {
		merged[dateKey] = entry
	}

	return merged, nil
}

// AssignShift implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) AssignShift(ctx context.Context, req schedule.AssignShiftRequest) (schedule.AssignShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.AssignShiftResponse{}, err
	}

	// Shares the per-staff lock with duty toggles so an assignment cannot
	// interleave with a clock-in/out for the same person.
	unlock := s.staffLocks.Lock(req.StaffID)
	defer unlock()

	member, err := s.StaffRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return schedule.AssignShiftResponse{}, err
	}

	entry := schedule.ShiftEntry(schedule.ShiftLabel(req.Shift))

	// Local override first so the edit is visible immediately and survives
	// a remote outage.
	if err := s.local.Set(ctx, req.StaffID, req.Date, entry); err != nil {
		return schedule.AssignShiftResponse{}, fmt.Errorf("failed to record schedule override: %w", err)
	}

	// Remote sync is best-effort. A failure is logged, never reverted: the
	// local override already carries the edit.
	go func() {
		syncCtx := context.WithoutCancel(ctx)
		if err := s.remote.Upsert(syncCtx, req.StaffID, req.Date, entry); err != nil {
			s.logger.Error("remote schedule sync failed",
				slog.String("staff_id", req.StaffID),
				slog.String("date", req.Date),
				slog.Any("error", err),
			)
		}
	}()

	dutyAffected := s.reconcileDutyForToday(ctx, member, req.Date, entry)

	s.hub.Broadcast(sse.Event{
		Event: "schedule_updated",
		Data: map[string]interface{}{
			"staff_id": req.StaffID,
			"date":     req.Date,
			"entry":    entry,
		},
	})

	return schedule.AssignShiftResponse{
		StaffID:      req.StaffID,
		Date:         req.Date,
		Entry:        entry,
		DutyAffected: dutyAffected,
	}, nil
}

// reconcileDutyForToday flips the live duty flag when the assignment changes
// what the staff member should be doing right now: a shift active at this
// instant puts them on duty, assigning "off" for today takes them off.
func (s *ScheduleServiceImpl) reconcileDutyForToday(ctx context.Context, member staff.StaffMember, dateKey string, entry schedule.Entry) bool {
	if dateKey != orgtime.Today() {
		return false
	}

	switch entry.Kind {
	case schedule.EntryShift:
		if !schedule.IsShiftActive(string(member.Role), entry.Shift, orgtime.Now()) {
			return false
		}
		if member.IsOnDuty && member.CurrentShift == entry.Shift {
			return false
		}
		if _, err := s.StaffRepository.UpdateDutyStatus(ctx, member.ID, true, entry.Shift); err != nil {
			s.logger.Error("failed to reconcile duty status after assignment",
				slog.String("staff_id", member.ID),
				slog.Any("error", err),
			)
			return false
		}
		return true

	case schedule.EntryOff:
		if !member.IsOnDuty {
			return false
		}
		if _, err := s.StaffRepository.UpdateDutyStatus(ctx, member.ID, false, schedule.ShiftOff); err != nil {
			s.logger.Error("failed to reconcile duty status after assignment",
				slog.String("staff_id", member.ID),
				slog.Any("error", err),
			)
			return false
		}
		return true
	}

	return false
}

// ClearSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) ClearSchedule(ctx context.Context, staffID string) error {
	if _, err := s.StaffRepository.GetByID(ctx, staffID); err != nil {
		return err
	}

	// Destructive and already confirmed by the caller: the remote delete
	// must go through before the local copy is dropped, otherwise a later
	// merge would resurrect the cleared entries.
	if err := s.remote.DeleteByStaff(ctx, staffID); err != nil {
		s.logger.Error("remote schedule clear failed",
			slog.String("staff_id", staffID),
			slog.Any("error", err),
		)
		return schedule.ErrClearScheduleFailed
	}

	if err := s.local.DeleteByStaff(ctx, staffID); err != nil {
		return fmt.Errorf("failed to clear local schedule overrides: %w", err)
	}

	s.hub.Broadcast(sse.Event{
		Event: "schedule_cleared",
		Data:  map[string]interface{}{"staff_id": staffID},
	})

	return nil
}
