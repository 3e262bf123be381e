package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pulseward/icu-backend-go/internal/domain/leave"
	"github.com/pulseward/icu-backend-go/internal/domain/schedule"
	"github.com/pulseward/icu-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	GetMerged(w http.ResponseWriter, r *http.Request)
	AssignShift(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
	RequestTimeOff(w http.ResponseWriter, r *http.Request)
	ListTimeOff(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
	leaveService    leave.LeaveService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService, leaveService leave.LeaveService) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
		leaveService:    leaveService,
	}
}

// GetMerged implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetMerged(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")

	merged, err := h.scheduleService.MergedSchedule(r.Context(), staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, schedule.MergedScheduleResponse{
		StaffID:  staffID,
		Schedule: merged,
	})
}

// AssignShift implements ScheduleHandler.
func (h *scheduleHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	var req schedule.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = chi.URLParam(r, "id")

	result, err := h.scheduleService.AssignShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Clear implements ScheduleHandler.
func (h *scheduleHandlerImpl) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.scheduleService.ClearSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule cleared", nil)
}

// RequestTimeOff implements ScheduleHandler.
func (h *scheduleHandlerImpl) RequestTimeOff(w http.ResponseWriter, r *http.Request) {
	var req leave.RequestTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StaffID = chi.URLParam(r, "id")

	result, err := h.leaveService.RequestTimeOff(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time off recorded", result)
}

// ListTimeOff implements ScheduleHandler.
func (h *scheduleHandlerImpl) ListTimeOff(w http.ResponseWriter, r *http.Request) {
	records, err := h.leaveService.ListByStaff(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]leave.TimeOffRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, leave.TimeOffRecordResponse{
			ID:        rec.ID,
			StaffID:   rec.StaffID,
			StartDate: rec.StartDate,
			EndDate:   rec.EndDate,
			Type:      string(rec.Type),
			Reason:    rec.Reason,
			CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		})
	}

	response.Success(w, out)
}
