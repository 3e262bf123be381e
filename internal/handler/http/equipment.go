package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pulseward/icu-backend-go/internal/domain/equipment"
	"github.com/pulseward/icu-backend-go/internal/handler/http/response"
)

type EquipmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type equipmentHandlerImpl struct {
	equipmentService equipment.EquipmentService
}

func NewEquipmentHandler(equipmentService equipment.EquipmentService) EquipmentHandler {
	return &equipmentHandlerImpl{equipmentService: equipmentService}
}

// Create implements EquipmentHandler.
func (h *equipmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req equipment.CreateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.equipmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Equipment created", result)
}

// Get implements EquipmentHandler.
func (h *equipmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.equipmentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements EquipmentHandler.
func (h *equipmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := equipment.EquipmentFilter{}

	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	result, err := h.equipmentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements EquipmentHandler.
func (h *equipmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req equipment.UpdateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.equipmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements EquipmentHandler.
func (h *equipmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.equipmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Equipment deleted", nil)
}
