package duty

import (
	"testing"
	"time"

	"github.com/pulseward/icu-backend-go/internal/domain/duty"
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/pkg/orgtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// orgClock builds an instant at the given organizational wall-clock time.
func orgClock(hour, minute int) time.Time {
	return time.Date(2026, 9, 1, hour, minute, 0, 0, orgtime.Zone)
}

func entryPtr(e schedule.Entry) *schedule.Entry {
	return &e
}

func TestEvaluateToday_NilEntry(t *testing.T) {
	assert.Nil(t, EvaluateToday(nil, "doctor", orgClock(10, 0)))
}

func TestEvaluateToday_OffDay(t *testing.T) {
	info := EvaluateToday(entryPtr(schedule.Entry{Kind: schedule.EntryOff}), "doctor", orgClock(10, 0))
	assert.Nil(t, info, "an off day means nothing is scheduled")
}

func TestEvaluateToday_ActiveShift(t *testing.T) {
	entry := entryPtr(schedule.ShiftEntry(schedule.ShiftMorning))

	info := EvaluateToday(entry, "doctor", orgClock(10, 0))
	require.NotNil(t, info)
	assert.Equal(t, duty.KindShift, info.Kind)
	assert.Equal(t, schedule.ShiftMorning, info.Shift)
	assert.True(t, info.IsCurrentTime)
	assert.True(t, info.ClockInEligible())
}

func TestEvaluateToday_InactiveShift(t *testing.T) {
	entry := entryPtr(schedule.ShiftEntry(schedule.ShiftMorning))

	info := EvaluateToday(entry, "doctor", orgClock(22, 0))
	require.NotNil(t, info)
	assert.Equal(t, duty.KindShift, info.Kind)
	assert.False(t, info.IsCurrentTime)
	assert.False(t, info.ClockInEligible(), "a scheduled but inactive shift must not permit clock-in")
}

func TestEvaluateToday_OvernightShiftActiveAcrossMidnight(t *testing.T) {
	entry := entryPtr(schedule.ShiftEntry(schedule.ShiftNight))

	// Nurse night runs 19:00 through 07:00 the next morning.
	assert.True(t, EvaluateToday(entry, "nurse", orgClock(23, 30)).IsCurrentTime)
	assert.True(t, EvaluateToday(entry, "nurse", orgClock(5, 0)).IsCurrentTime)
	assert.False(t, EvaluateToday(entry, "nurse", orgClock(12, 0)).IsCurrentTime)
}

func TestEvaluateToday_LeavePreemptsClockIn(t *testing.T) {
	entry := entryPtr(schedule.Entry{Kind: schedule.EntryLeave, LeaveType: "sick"})

	info := EvaluateToday(entry, "nurse", orgClock(10, 0))
	require.NotNil(t, info)
	assert.Equal(t, duty.KindLeave, info.Kind)
	assert.Equal(t, "sick", info.LeaveType)
	assert.True(t, info.IsCurrentTime, "leave covers the whole day")
	assert.False(t, info.ClockInEligible())
}

func TestEvaluateToday_TimeOff(t *testing.T) {
	entry := entryPtr(schedule.TimeOffEntry("vacation", "annual leave"))

	info := EvaluateToday(entry, "doctor", orgClock(10, 0))
	require.NotNil(t, info)
	assert.Equal(t, duty.KindTimeOff, info.Kind)
	assert.Equal(t, "vacation", info.LeaveType)
	assert.False(t, info.ClockInEligible())
}

func TestEvaluateToday_Absent(t *testing.T) {
	info := EvaluateToday(entryPtr(schedule.AbsentEntry()), "doctor", orgClock(10, 0))
	require.NotNil(t, info)
	assert.Equal(t, duty.KindAbsent, info.Kind)
	assert.False(t, info.IsCurrentTime)
	assert.False(t, info.ClockInEligible())
}
