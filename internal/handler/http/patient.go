package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pulseward/icu-backend-go/internal/domain/patient"
	"github.com/pulseward/icu-backend-go/internal/handler/http/response"
)

type PatientHandler interface {
	Admit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	AssignBed(w http.ResponseWriter, r *http.Request)
	UnassignBed(w http.ResponseWriter, r *http.Request)
	Discharge(w http.ResponseWriter, r *http.Request)
}

type patientHandlerImpl struct {
	patientService patient.PatientService
}

func NewPatientHandler(patientService patient.PatientService) PatientHandler {
	return &patientHandlerImpl{patientService: patientService}
}

// Admit implements PatientHandler.
func (h *patientHandlerImpl) Admit(w http.ResponseWriter, r *http.Request) {
	var req patient.AdmitPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.patientService.Admit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Patient admitted", result)
}

// Get implements PatientHandler.
func (h *patientHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.patientService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PatientHandler.
func (h *patientHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := patient.PatientFilter{}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if severity := r.URL.Query().Get("severity"); severity != "" {
		filter.Severity = &severity
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.patientService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Patients, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Update implements PatientHandler.
func (h *patientHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req patient.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.patientService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AssignBed implements PatientHandler.
func (h *patientHandlerImpl) AssignBed(w http.ResponseWriter, r *http.Request) {
	var req patient.AssignBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.PatientID = chi.URLParam(r, "id")

	result, err := h.patientService.AssignBed(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UnassignBed implements PatientHandler.
func (h *patientHandlerImpl) UnassignBed(w http.ResponseWriter, r *http.Request) {
	result, err := h.patientService.UnassignBed(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Discharge implements PatientHandler.
func (h *patientHandlerImpl) Discharge(w http.ResponseWriter, r *http.Request) {
	result, err := h.patientService.Discharge(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Patient discharged", result)
}
