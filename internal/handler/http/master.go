package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/interntrack/interntrack-backend-go/internal/domain/master/period"
	"github.com/interntrack/interntrack-backend-go/internal/domain/master/supervisor"
	"github.com/interntrack/interntrack-backend-go/internal/handler/http/response"
	"github.com/interntrack/interntrack-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreatePeriod(w http.ResponseWriter, r *http.Request)
	GetPeriod(w http.ResponseWriter, r *http.Request)
	ListPeriods(w http.ResponseWriter, r *http.Request)
	UpdatePeriod(w http.ResponseWriter, r *http.Request)
	DeletePeriod(w http.ResponseWriter, r *http.Request)
	CreateSupervisor(w http.ResponseWriter, r *http.Request)
	ListSupervisors(w http.ResponseWriter, r *http.Request)
	DeleteSupervisor(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{
		masterService: masterService,
	}
}

// CreatePeriod implements MasterHandler.
func (h *masterHandlerImpl) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req period.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreatePeriod(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Period created", result)
}

// GetPeriod implements MasterHandler.
func (h *masterHandlerImpl) GetPeriod(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.GetPeriod(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPeriods implements MasterHandler.
func (h *masterHandlerImpl) ListPeriods(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListPeriods(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdatePeriod implements MasterHandler.
func (h *masterHandlerImpl) UpdatePeriod(w http.ResponseWriter, r *http.Request) {
	var req period.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdatePeriod(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period updated", result)
}

// DeletePeriod implements MasterHandler.
func (h *masterHandlerImpl) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeletePeriod(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Period deleted", nil)
}

// CreateSupervisor implements MasterHandler.
func (h *masterHandlerImpl) CreateSupervisor(w http.ResponseWriter, r *http.Request) {
	var req supervisor.CreateSupervisorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateSupervisor(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Supervisor created", result)
}

// ListSupervisors implements MasterHandler.
func (h *masterHandlerImpl) ListSupervisors(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListSupervisors(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteSupervisor implements MasterHandler.
func (h *masterHandlerImpl) DeleteSupervisor(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteSupervisor(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Supervisor deleted", nil)
}
