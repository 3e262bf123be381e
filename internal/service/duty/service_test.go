package duty

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/pulseward/icu-backend-go/internal/domain/duty"
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/domain/staff"
	"github.com/pulseward/icu-backend-go/internal/pkg/keymutex"
	"github.com/pulseward/icu-backend-go/internal/pkg/orgtime"
	"github.com/pulseward/icu-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffRepo struct {
	mu        sync.Mutex
	members   map[string]staff.StaffMember
	updateErr error
}

func newFakeStaffRepo(members ...staff.StaffMember) *fakeStaffRepo {
	repo := &fakeStaffRepo{members: make(map[string]staff.StaffMember)}
	for _, m := range members {
		repo.members[m.ID] = m
	}
	return repo
}

func (f *fakeStaffRepo) Create(_ context.Context, m staff.StaffMember) (staff.StaffMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.members[m.ID] = m
	return m, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.StaffMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.members[id]
	if !ok {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return m, nil
}

func (f *fakeStaffRepo) List(_ context.Context, _ staff.StaffFilter) ([]staff.StaffMember, int64, error) {
	return nil, 0, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, m staff.StaffMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.members[m.ID] = m
	return nil
}

func (f *fakeStaffRepo) UpdateDutyStatus(_ context.Context, id string, isOnDuty bool, currentShift schedule.ShiftLabel) (staff.StaffMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return staff.StaffMember{}, f.updateErr
	}
	m, ok := f.members[id]
	if !ok {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	m.IsOnDuty = isOnDuty
	m.CurrentShift = currentShift
	f.members[id] = m
	return m, nil
}

func (f *fakeStaffRepo) CountOnDutyByRole(_ context.Context) (map[staff.Role]int64, error) {
	return nil, nil
}

func (f *fakeStaffRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.members, id)
	return nil
}

type fakeOverrideStore struct {
	mu      sync.Mutex
	entries map[string]map[string]schedule.Entry
	setErr  error
}

func newFakeOverrideStore() *fakeOverrideStore {
	return &fakeOverrideStore{entries: make(map[string]map[string]schedule.Entry)}
}

func (f *fakeOverrideStore) GetByStaff(_ context.Context, staffID string) (map[string]schedule.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]schedule.Entry)
	for k, v := range f.entries[staffID] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeOverrideStore) Set(_ context.Context, staffID, dateKey string, entry schedule.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	if f.entries[staffID] == nil {
		f.entries[staffID] = make(map[string]schedule.Entry)
	}
	f.entries[staffID][dateKey] = entry
	return nil
}

func (f *fakeOverrideStore) SetMany(ctx context.Context, staffID string, entries map[string]schedule.Entry) error {
	for k, v := range entries {
		if err := f.Set(ctx, staffID, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeOverrideStore) Delete(_ context.Context, staffID, dateKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries[staffID], dateKey)
	return nil
}

func (f *fakeOverrideStore) DeleteByStaff(_ context.Context, staffID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, staffID)
	return nil
}

func (f *fakeOverrideStore) get(staffID, dateKey string) (schedule.Entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[staffID][dateKey]
	return e, ok
}

type fakeRemoteRepo struct {
	mu      sync.Mutex
	entries map[string]map[string]schedule.Entry
}

func newFakeRemoteRepo() *fakeRemoteRepo {
	return &fakeRemoteRepo{entries: make(map[string]map[string]schedule.Entry)}
}

func (f *fakeRemoteRepo) GetByStaff(_ context.Context, staffID string) (map[string]schedule.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]schedule.Entry)
	for k, v := range f.entries[staffID] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeRemoteRepo) Upsert(_ context.Context, staffID, dateKey string, entry schedule.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.entries[staffID] == nil {
		f.entries[staffID] = make(map[string]schedule.Entry)
	}
	f.entries[staffID][dateKey] = entry
	return nil
}

func (f *fakeRemoteRepo) UpsertMany(ctx context.Context, staffID string, entries map[string]schedule.Entry) error {
	for k, v := range entries {
		if err := f.Upsert(ctx, staffID, k, v); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeRemoteRepo) DeleteByStaff(_ context.Context, staffID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, staffID)
	return nil
}

// stubScheduleService serves a fixed merged schedule per staff member.
type stubScheduleService struct {
	merged map[string]map[string]schedule.Entry
	err    error
}

func (s *stubScheduleService) MergedSchedule(_ context.Context, staffID string) (map[string]schedule.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make(map[string]schedule.Entry)
	for k, v := range s.merged[staffID] {
		out[k] = v
	}
	return out, nil
}

func (s *stubScheduleService) AssignShift(_ context.Context, _ schedule.AssignShiftRequest) (schedule.AssignShiftResponse, error) {
	return schedule.AssignShiftResponse{}, errors.New("not implemented")
}

func (s *stubScheduleService) ClearSchedule(_ context.Context, _ string) error {
	return errors.New("not implemented")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNurse(onDuty bool) staff.StaffMember {
	shift := schedule.ShiftOff
	if onDuty {
		shift = schedule.ShiftEmergency
	}
	return staff.StaffMember{
		ID:           "nurse-1",
		FullName:     "Meera Pillai",
		Role:         staff.RoleNurse,
		IsOnDuty:     onDuty,
		CurrentShift: shift,
	}
}

func todaySchedule(entry schedule.Entry) *stubScheduleService {
	return &stubScheduleService{
		merged: map[string]map[string]schedule.Entry{
			"nurse-1": {orgtime.Today(): entry},
		},
	}
}

func newTestService(staffRepo *fakeStaffRepo, schedules schedule.ScheduleService, overrides *fakeOverrideStore, remote *fakeRemoteRepo) duty.DutyService {
	return NewDutyService(staffRepo, schedules, overrides, remote, keymutex.New(), sse.NewHub(), testLogger())
}

func TestToggleDuty_ClockInDuringActiveShift(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(false))
	// The emergency shift spans the whole organizational day, so it is
	// active whenever this test runs.
	svc := newTestService(staffRepo, todaySchedule(schedule.ShiftEntry(schedule.ShiftEmergency)), newFakeOverrideStore(), newFakeRemoteRepo())

	resp, err := svc.ToggleDuty(context.Background(), "nurse-1")
	require.NoError(t, err)
	assert.True(t, resp.IsOnDuty)
	assert.Equal(t, "emergency", resp.CurrentShift)
	assert.False(t, resp.AbsenceRecorded)

	member, err := staffRepo.GetByID(context.Background(), "nurse-1")
	require.NoError(t, err)
	assert.True(t, member.IsOnDuty)
	assert.Equal(t, schedule.ShiftEmergency, member.CurrentShift)
}

func TestToggleDuty_ClockInWithoutScheduleRejected(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(false))
	svc := newTestService(staffRepo, &stubScheduleService{}, newFakeOverrideStore(), newFakeRemoteRepo())

	_, err := svc.ToggleDuty(context.Background(), "nurse-1")
	assert.ErrorIs(t, err, duty.ErrNoScheduledShift)

	member, getErr := staffRepo.GetByID(context.Background(), "nurse-1")
	require.NoError(t, getErr)
	assert.False(t, member.IsOnDuty, "a rejected clock-in must not change duty state")
}

func TestToggleDuty_ClockInOnAbsentDayRejected(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(false))
	svc := newTestService(staffRepo, todaySchedule(schedule.AbsentEntry()), newFakeOverrideStore(), newFakeRemoteRepo())

	_, err := svc.ToggleDuty(context.Background(), "nurse-1")
	assert.ErrorIs(t, err, duty.ErrNoScheduledShift)
}

func TestToggleDuty_ClockInOnLeaveDayRejected(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(false))
	svc := newTestService(staffRepo, todaySchedule(schedule.TimeOffEntry("vacation", "")), newFakeOverrideStore(), newFakeRemoteRepo())

	_, err := svc.ToggleDuty(context.Background(), "nurse-1")
	assert.ErrorIs(t, err, duty.ErrOnLeaveToday)
}

func TestToggleDuty_ClockInPersistenceFailure(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(false))
	staffRepo.updateErr = errors.New("write failed")
	svc := newTestService(staffRepo, todaySchedule(schedule.ShiftEntry(schedule.ShiftEmergency)), newFakeOverrideStore(), newFakeRemoteRepo())

	_, err := svc.ToggleDuty(context.Background(), "nurse-1")
	assert.ErrorIs(t, err, duty.ErrPersistenceFailed)
}

func TestToggleDuty_ClockOutMidShiftRecordsAbsence(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(true))
	overrides := newFakeOverrideStore()
	svc := newTestService(staffRepo, todaySchedule(schedule.ShiftEntry(schedule.ShiftEmergency)), overrides, newFakeRemoteRepo())

	resp, err := svc.ToggleDuty(context.Background(), "nurse-1")
	require.NoError(t, err)
	assert.False(t, resp.IsOnDuty)
	assert.Equal(t, "off", resp.CurrentShift)
	assert.True(t, resp.AbsenceRecorded)

	entry, ok := overrides.get("nurse-1", orgtime.Today())
	require.True(t, ok, "mid-shift clock-out must record an absence override")
	assert.Equal(t, schedule.EntryAbsent, entry.Kind)
}

func TestToggleDuty_ClockOutAfterShiftEndIsPlain(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(true))
	overrides := newFakeOverrideStore()
	// An absent entry for today means the scheduled shift is no longer
	// considered active for this member.
	svc := newTestService(staffRepo, todaySchedule(schedule.AbsentEntry()), overrides, newFakeRemoteRepo())

	resp, err := svc.ToggleDuty(context.Background(), "nurse-1")
	require.NoError(t, err)
	assert.False(t, resp.IsOnDuty)
	assert.False(t, resp.AbsenceRecorded)
}

func TestToggleDuty_ClockOutWithEmptySchedule(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(true))
	svc := newTestService(staffRepo, &stubScheduleService{}, newFakeOverrideStore(), newFakeRemoteRepo())

	resp, err := svc.ToggleDuty(context.Background(), "nurse-1")
	require.NoError(t, err, "clock-out never fails on schedule grounds")
	assert.False(t, resp.IsOnDuty)
	assert.False(t, resp.AbsenceRecorded)
}

func TestToggleDuty_ClockOutPersistenceFailureRollsBackAbsence(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(true))
	staffRepo.updateErr = errors.New("write failed")
	overrides := newFakeOverrideStore()
	svc := newTestService(staffRepo, todaySchedule(schedule.ShiftEntry(schedule.ShiftEmergency)), overrides, newFakeRemoteRepo())

	_, err := svc.ToggleDuty(context.Background(), "nurse-1")
	assert.ErrorIs(t, err, duty.ErrPersistenceFailed)

	_, ok := overrides.get("nurse-1", orgtime.Today())
	assert.False(t, ok, "the optimistic absence must be rolled back")

	member, getErr := staffRepo.GetByID(context.Background(), "nurse-1")
	require.NoError(t, getErr)
	assert.True(t, member.IsOnDuty, "duty state must be unchanged after a failed persist")
}

func TestToggleDuty_UnknownStaff(t *testing.T) {
	svc := newTestService(newFakeStaffRepo(), &stubScheduleService{}, newFakeOverrideStore(), newFakeRemoteRepo())

	_, err := svc.ToggleDuty(context.Background(), "ghost")
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestEvaluateFor_UsesTodayEntry(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(false))
	svc := newTestService(staffRepo, todaySchedule(schedule.TimeOffEntry("sick", "flu")), newFakeOverrideStore(), newFakeRemoteRepo())

	member, err := staffRepo.GetByID(context.Background(), "nurse-1")
	require.NoError(t, err)

	info, err := svc.EvaluateFor(context.Background(), member)
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, duty.KindTimeOff, info.Kind)
	assert.Equal(t, "sick", info.LeaveType)
}

func TestEvaluateFor_NothingScheduled(t *testing.T) {
	staffRepo := newFakeStaffRepo(testNurse(false))
	svc := newTestService(staffRepo, &stubScheduleService{}, newFakeOverrideStore(), newFakeRemoteRepo())

	member, err := staffRepo.GetByID(context.Background(), "nurse-1")
	require.NoError(t, err)

	info, err := svc.EvaluateFor(context.Background(), member)
	require.NoError(t, err)
	assert.Nil(t, info)
}
