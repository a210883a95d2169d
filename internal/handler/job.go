package handler

import (
	"errors"
	"net/http"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/job"
	"github.com/dmkorzh/farmbox/internal/logger"
)

// WorkerRequest represents a request targeting one worker
type WorkerRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	WorkerID int    `json:"worker_id" validate:"gte=0"`
}

// JobHandler handles worker shift HTTP requests
type JobHandler struct {
	jobSvc job.Service
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobSvc job.Service) *JobHandler {
	return &JobHandler{
		jobSvc: jobSvc,
	}
}

// HireWorker handles the hire endpoint
func (h *JobHandler) HireWorker(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req WorkerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "HireWorker"); err != nil {
		return
	}

	response, err := h.jobSvc.HireWorker(r.Context(), req.PlayerID, req.WorkerID)
	if err != nil {
		log.Error("HireWorker failed", "error", err, "player_id", req.PlayerID, "worker_id", req.WorkerID)

		if errors.Is(err, domain.ErrWorkerBusy) {
			respondError(w, http.StatusConflict, ErrMsgWorkerBusyError)
			return
		}

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("HireWorker successful",
		"player_id", req.PlayerID,
		"worker_id", response.WorkerID,
		"ends_at", response.EndsAt,
		"wage", response.Wage)

	respondJSON(w, http.StatusOK, response)
}

// FireWorker handles the fire endpoint
func (h *JobHandler) FireWorker(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req WorkerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "FireWorker"); err != nil {
		return
	}

	response, err := h.jobSvc.FireWorker(r.Context(), req.PlayerID, req.WorkerID)
	if err != nil {
		log.Error("FireWorker failed", "error", err, "player_id", req.PlayerID, "worker_id", req.WorkerID)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("FireWorker successful", "player_id", req.PlayerID, "worker_id", response.WorkerID)

	respondJSON(w, http.StatusOK, response)
}
