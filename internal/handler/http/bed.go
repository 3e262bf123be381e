package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pulseward/icu-backend-go/internal/domain/bed"
	"github.com/pulseward/icu-backend-go/internal/handler/http/response"
)

type BedHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type bedHandlerImpl struct {
	bedService bed.BedService
}

func NewBedHandler(bedService bed.BedService) BedHandler {
	return &bedHandlerImpl{bedService: bedService}
}

// Create implements BedHandler.
func (h *bedHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req bed.CreateBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.bedService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bed created", result)
}

// Get implements BedHandler.
func (h *bedHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.bedService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements BedHandler.
func (h *bedHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := bed.BedFilter{}

	if ward := r.URL.Query().Get("ward"); ward != "" {
		filter.Ward = &ward
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.bedService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements BedHandler.
func (h *bedHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req bed.UpdateBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.bedService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements BedHandler.
func (h *bedHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.bedService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bed deleted", nil)
}
