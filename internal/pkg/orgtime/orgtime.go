package orgtime

import "time"

// The hospital operates on a single organizational time zone (UTC+5:30),
// regardless of where the API server runs. Every shift-boundary and date-key
// decision must go through this package; using the host-local clock shifts
// day buckets near midnight.
var Zone = time.FixedZone("UTC+05:30", 5*3600+30*60)

// DateKeyLayout is the canonical day-granularity key format. It is the only
// format ever written to the schedule stores.
const DateKeyLayout = "2006-01-02"

// Now returns the current instant in the organizational time zone.
func Now() time.Time {
	return time.Now().UTC().In(Zone)
}

// DateKey returns the canonical date key for t, evaluated in the
// organizational time zone.
func DateKey(t time.Time) string {
	return t.In(Zone).Format(DateKeyLayout)
}

// Today returns the canonical date key for the current instant.
func Today() string {
	return DateKey(Now())
}

// MinuteOfDay returns the minute-of-day (0..1439) of t in the organizational
// time zone, used for shift-range comparisons.
func MinuteOfDay(t time.Time) int {
	local := t.In(Zone)
	return local.Hour()*60 + local.Minute()
}

// ParseDateKey parses a canonical date key into a time at midnight of the
// organizational time zone.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateKeyLayout, key, Zone)
}
