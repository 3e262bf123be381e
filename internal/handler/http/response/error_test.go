package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pulseward/icu-backend-go/internal/domain/duty"
	"github.com/pulseward/icu-backend-go/internal/domain/leave"
	"github.com/pulseward/icu-backend-go/internal/domain/patient"
	"github.com/pulseward/icu-backend-go/internal/domain/staff"
	"github.com/pulseward/icu-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no scheduled shift", duty.ErrNoScheduledShift, http.StatusConflict},
		{"on leave today", duty.ErrOnLeaveToday, http.StatusConflict},
		{"duty persistence failed", duty.ErrPersistenceFailed, http.StatusBadGateway},
		{"time off persist failed", leave.ErrTimeOffPersistFailed, http.StatusBadGateway},
		{"staff not found", staff.ErrStaffNotFound, http.StatusNotFound},
		{"patient discharged", patient.ErrPatientDischarged, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandleError_ValidationErrorsCarryDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "date must be in YYYY-MM-DD format", body.Error.Details["date"])
}
