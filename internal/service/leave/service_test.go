package leave

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/pulseward/icu-backend-go/internal/domain/leave"
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/domain/staff"
	"github.com/pulseward/icu-backend-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimeOffRepo struct {
	mu        sync.Mutex
	records   []leave.TimeOffRequestRecord
	createErr error
}

func (f *fakeTimeOffRepo) CreateRequest(_ context.Context, record leave.TimeOffRequestRecord) (leave.TimeOffRequestRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return leave.TimeOffRequestRecord{}, f.createErr
	}
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeTimeOffRepo) ListByStaff(_ context.Context, staffID string) ([]leave.TimeOffRequestRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.TimeOffRequestRecord
	for _, r := range f.records {
		if r.StaffID == staffID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeStaffRepo struct {
	members map[string]staff.StaffMember
}

func (f *fakeStaffRepo) Create(_ context.Context, m staff.StaffMember) (staff.StaffMember, error) {
	return m, nil
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.StaffMember, error) {
	m, ok := f.members[id]
	if !ok {
		return staff.StaffMember{}, staff.ErrStaffNotFound
	}
	return m, nil
}

func (f *fakeStaffRepo) List(_ context.Context, _ staff.StaffFilter) ([]staff.StaffMember, int64, error) {
	return nil, 0, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, _ staff.StaffMember) error { return nil }

func (f *fakeStaffRepo) UpdateDutyStatus(_ context.Context, _ string, _ bool, _ schedule.ShiftLabel) (staff.StaffMember, error) {
	return staff.StaffMember{}, nil
}

func (f *fakeStaffRepo) CountOnDutyByRole(_ context.Context) (map[staff.Role]int64, error) {
	return nil, nil
}

func (f *fakeStaffRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeScheduleStore struct {
	mu        sync.Mutex
	entries   map[string]map[string]schedule.Entry
	upsertErr error
	setErr    error
}

func newFakeScheduleStore() *fakeScheduleStore {
	return &fakeScheduleStore{entries: make(map[string]map[string]schedule.Entry)}
}

func (f *fakeScheduleStore) put(staffID, dateKey string, entry schedule.Entry) {
	if f.entries[staffID] == nil {
		f.entries[staffID] = make(map[string]schedule.Entry)
	}
	f.entries[staffID][dateKey] = entry
}

func (f *fakeScheduleStore) GetByStaff(_ context.Context, staffID string) (map[string]schedule.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]schedule.Entry)
	for k, v := range f.entries[staffID] {
		out[k] = v
	}
	return out, nil
}

func (f *fakeScheduleStore) Upsert(_ context.Context, staffID, dateKey string, entry schedule.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.put(staffID, dateKey, entry)
	return nil
}

func (f *fakeScheduleStore) UpsertMany(_ context.Context, staffID string, entries map[string]schedule.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for k, v := range entries {
		f.put(staffID, k, v)
	}
	return nil
}

func (f *fakeScheduleStore) DeleteByStaff(_ context.Context, staffID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, staffID)
	return nil
}

func (f *fakeScheduleStore) Set(_ context.Context, staffID, dateKey string, entry schedule.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.put(staffID, dateKey, entry)
	return nil
}

func (f *fakeScheduleStore) SetMany(_ context.Context, staffID string, entries map[string]schedule.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	for k, v := range entries {
		f.put(staffID, k, v)
	}
	return nil
}

func (f *fakeScheduleStore) Delete(_ context.Context, staffID, dateKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries[staffID], dateKey)
	return nil
}

func (f *fakeScheduleStore) count(staffID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries[staffID])
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(timeOff *fakeTimeOffRepo, remote, overrides *fakeScheduleStore) leave.LeaveService {
	staffRepo := &fakeStaffRepo{members: map[string]staff.StaffMember{
		"nurse-1": {ID: "nurse-1", FullName: "Meera Pillai", Role: staff.RoleNurse},
	}}
	return NewLeaveService(timeOff, staffRepo, remote, overrides, sse.NewHub(), testLogger())
}

func TestExpandDateRange_Inclusive(t *testing.T) {
	keys, err := ExpandDateRange("2026-09-01", "2026-09-03")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-01", "2026-09-02", "2026-09-03"}, keys)
}

func TestExpandDateRange_SingleDay(t *testing.T) {
	keys, err := ExpandDateRange("2026-09-01", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-01"}, keys)
}

func TestExpandDateRange_CrossesMonthBoundary(t *testing.T) {
	keys, err := ExpandDateRange("2026-08-30", "2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-08-30", "2026-08-31", "2026-09-01", "2026-09-02"}, keys)
}

func TestRequestTimeOff_WritesEveryCoveredDate(t *testing.T) {
	timeOff := &fakeTimeOffRepo{}
	remote := newFakeScheduleStore()
	overrides := newFakeScheduleStore()
	svc := newTestService(timeOff, remote, overrides)

	resp, err := svc.RequestTimeOff(context.Background(), leave.RequestTimeOffRequest{
		StaffID:   "nurse-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
		Type:      "vacation",
		Reason:    "family trip",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.RequestID)
	assert.Len(t, resp.Schedules, 3)

	for _, key := range []string{"2026-09-01", "2026-09-02", "2026-09-03"} {
		entry, ok := resp.Schedules[key]
		require.True(t, ok, "missing entry for %s", key)
		assert.Equal(t, schedule.EntryTimeOff, entry.Kind)
		assert.Equal(t, "vacation", entry.LeaveType)
		assert.Equal(t, "family trip", entry.Reason)
	}

	assert.Equal(t, 3, remote.count("nurse-1"), "remote store must hold one entry per covered date")
	assert.Equal(t, 3, overrides.count("nurse-1"), "local cache must be primed")
	assert.Len(t, timeOff.records, 1)
}

func TestRequestTimeOff_RemoteFailureSurfaces(t *testing.T) {
	timeOff := &fakeTimeOffRepo{}
	remote := newFakeScheduleStore()
	remote.upsertErr = errors.New("remote down")
	overrides := newFakeScheduleStore()
	svc := newTestService(timeOff, remote, overrides)

	_, err := svc.RequestTimeOff(context.Background(), leave.RequestTimeOffRequest{
		StaffID:   "nurse-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
		Type:      "sick",
	})
	assert.ErrorIs(t, err, leave.ErrTimeOffPersistFailed)
	assert.Equal(t, 0, overrides.count("nurse-1"), "overrides must not be primed after a failed remote write")
}

func TestRequestTimeOff_AuditRecordFailureSurfaces(t *testing.T) {
	timeOff := &fakeTimeOffRepo{createErr: errors.New("insert failed")}
	svc := newTestService(timeOff, newFakeScheduleStore(), newFakeScheduleStore())

	_, err := svc.RequestTimeOff(context.Background(), leave.RequestTimeOffRequest{
		StaffID:   "nurse-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
		Type:      "sick",
	})
	assert.ErrorIs(t, err, leave.ErrTimeOffPersistFailed)
}

func TestRequestTimeOff_OverridePrimeFailureIsTolerated(t *testing.T) {
	timeOff := &fakeTimeOffRepo{}
	remote := newFakeScheduleStore()
	overrides := newFakeScheduleStore()
	overrides.setErr = errors.New("cache down")
	svc := newTestService(timeOff, remote, overrides)

	_, err := svc.RequestTimeOff(context.Background(), leave.RequestTimeOffRequest{
		StaffID:   "nurse-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
		Type:      "personal",
	})
	require.NoError(t, err, "a cache priming failure only costs freshness")
	assert.Equal(t, 1, remote.count("nurse-1"))
}

func TestRequestTimeOff_RejectsInvalidInput(t *testing.T) {
	svc := newTestService(&fakeTimeOffRepo{}, newFakeScheduleStore(), newFakeScheduleStore())

	cases := []struct {
		name string
		req  leave.RequestTimeOffRequest
	}{
		{"reversed range", leave.RequestTimeOffRequest{StaffID: "nurse-1", StartDate: "2026-09-05", EndDate: "2026-09-01", Type: "vacation"}},
		{"bad date", leave.RequestTimeOffRequest{StaffID: "nurse-1", StartDate: "05/09/2026", EndDate: "2026-09-06", Type: "vacation"}},
		{"unknown type", leave.RequestTimeOffRequest{StaffID: "nurse-1", StartDate: "2026-09-01", EndDate: "2026-09-02", Type: "sabbatical"}},
		{"missing staff id", leave.RequestTimeOffRequest{StartDate: "2026-09-01", EndDate: "2026-09-02", Type: "vacation"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RequestTimeOff(context.Background(), tc.req)
			assert.Error(t, err)
		})
	}
}

func TestRequestTimeOff_UnknownStaff(t *testing.T) {
	svc := newTestService(&fakeTimeOffRepo{}, newFakeScheduleStore(), newFakeScheduleStore())

	_, err := svc.RequestTimeOff(context.Background(), leave.RequestTimeOffRequest{
		StaffID:   "ghost",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
		Type:      "vacation",
	})
	assert.ErrorIs(t, err, staff.ErrStaffNotFound)
}

func TestListByStaff(t *testing.T) {
	timeOff := &fakeTimeOffRepo{}
	svc := newTestService(timeOff, newFakeScheduleStore(), newFakeScheduleStore())

	_, err := svc.RequestTimeOff(context.Background(), leave.RequestTimeOffRequest{
		StaffID:   "nurse-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
		Type:      "training",
	})
	require.NoError(t, err)

	records, err := svc.ListByStaff(context.Background(), "nurse-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, leave.TimeOffTraining, records[0].Type)
}
