package schedule

import (
	"testing"
	"time"

	"github.com/pulseward/icu-backend-go/internal/pkg/orgtime"
	"github.com/stretchr/testify/assert"
)

// orgClock builds an instant at the given org-zone wall time.
func orgClock(hour, minute int) time.Time {
	return time.Date(2024, 5, 10, hour, minute, 0, 0, orgtime.Zone)
}

func TestIsShiftActive_DayShiftBounds(t *testing.T) {
	// Doctor morning shift runs 08:00-16:00, bounds inclusive.
	assert.False(t, IsShiftActive("doctor", ShiftMorning, orgClock(7, 59)))
	assert.True(t, IsShiftActive("doctor", ShiftMorning, orgClock(8, 0)))
	assert.True(t, IsShiftActive("doctor", ShiftMorning, orgClock(12, 0)))
	assert.True(t, IsShiftActive("doctor", ShiftMorning, orgClock(16, 0)))
	assert.False(t, IsShiftActive("doctor", ShiftMorning, orgClock(16, 1)))
}

func TestIsShiftActive_OvernightWraparound(t *testing.T) {
	// Nurse night shift runs 19:00-07:00 across midnight.
	assert.True(t, IsShiftActive("nurse", ShiftNight, orgClock(23, 30)))
	assert.True(t, IsShiftActive("nurse", ShiftNight, orgClock(5, 0)))
	assert.True(t, IsShiftActive("nurse", ShiftNight, orgClock(19, 0)))
	assert.True(t, IsShiftActive("nurse", ShiftNight, orgClock(7, 0)))
	assert.False(t, IsShiftActive("nurse", ShiftNight, orgClock(12, 0)))
	assert.False(t, IsShiftActive("nurse", ShiftNight, orgClock(18, 59)))
}

func TestIsShiftActive_EmergencyAlwaysActive(t *testing.T) {
	for _, clock := range []time.Time{orgClock(0, 0), orgClock(3, 17), orgClock(12, 0), orgClock(23, 59)} {
		assert.True(t, IsShiftActive("doctor", ShiftEmergency, clock))
		assert.True(t, IsShiftActive("nurse", ShiftEmergency, clock))
	}
}

func TestIsShiftActive_DefaultTableFallback(t *testing.T) {
	// Pharmacists have no role-specific table and use the default one.
	assert.True(t, IsShiftActive("pharmacist", ShiftMorning, orgClock(9, 0)))
	assert.True(t, IsShiftActive("pharmacist", ShiftNight, orgClock(2, 0)))

	// The default table defines no emergency shift, so the pair is
	// unscheduled rather than always-on.
	assert.False(t, IsShiftActive("pharmacist", ShiftEmergency, orgClock(9, 0)))
}

func TestIsShiftActive_RoleTableOverridesPerLabel(t *testing.T) {
	// Respiratory therapists define their own ranges but no emergency shift.
	assert.True(t, IsShiftActive("respiratory_therapist", ShiftMorning, orgClock(7, 30)))
	assert.False(t, IsShiftActive("respiratory_therapist", ShiftEmergency, orgClock(7, 30)))
}

func TestIsShiftActive_OffNeverActive(t *testing.T) {
	assert.False(t, IsShiftActive("doctor", ShiftOff, orgClock(10, 0)))
}

func TestIsShiftActive_InstantZoneIrrelevant(t *testing.T) {
	// 03:30 UTC is 09:00 in the organizational zone; the same instant must
	// evaluate identically however it is expressed.
	utc := time.Date(2024, 5, 10, 3, 30, 0, 0, time.UTC)
	assert.True(t, IsShiftActive("doctor", ShiftMorning, utc))
	assert.True(t, IsShiftActive("doctor", ShiftMorning, utc.In(time.FixedZone("UTC-05:00", -5*3600))))
}
