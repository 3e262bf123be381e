package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("nurse"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-01-31")
	assert.True(t, ok)

	// Only the canonical format is accepted.
	_, ok = IsValidDate("31-01-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("Mon Jan 01 2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsValidDateRange(t *testing.T) {
	assert.True(t, IsValidDateRange("2024-01-01", "2024-01-05"))
	assert.True(t, IsValidDateRange("2024-01-01", "2024-01-01"))
	assert.False(t, IsValidDateRange("2024-01-05", "2024-01-01"))
	assert.False(t, IsValidDateRange("not-a-date", "2024-01-01"))
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"doctor", "nurse", "technician"}
	assert.True(t, IsInSlice("nurse", roles))
	assert.False(t, IsInSlice("janitor", roles))
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
		{Field: "type", Message: "type must be a valid time off type"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "start_date is required", m["start_date"])
	assert.Contains(t, errs.Error(), "start_date")
}
