package handler

import (
	"net/http"

	"github.com/dmkorzh/farmbox/internal/domain"
	"github.com/dmkorzh/farmbox/internal/dump"
	"github.com/dmkorzh/farmbox/internal/logger"
)

// DumpRequest represents a request to sacrifice one unit of a resource
type DumpRequest struct {
	PlayerID string `json:"player_id" validate:"required,uuid"`
	Resource string `json:"resource" validate:"required,resourcekind"`
}

// DumpHandler handles dump sink HTTP requests
type DumpHandler struct {
	dumpSvc dump.Service
}

// NewDumpHandler creates a new dump handler
func NewDumpHandler(dumpSvc dump.Service) *DumpHandler {
	return &DumpHandler{
		dumpSvc: dumpSvc,
	}
}

// Dump handles the dump endpoint
func (h *DumpHandler) Dump(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if r.Method != http.MethodPost {
		log.Warn("Method not allowed", "method", r.Method)
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	var req DumpRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Dump"); err != nil {
		return
	}

	response, err := h.dumpSvc.Dump(r.Context(), req.PlayerID, domain.ResourceKind(req.Resource))
	if err != nil {
		log.Error("Dump failed", "error", err, "player_id", req.PlayerID, "resource", req.Resource)

		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	log.Info("Dump successful",
		"player_id", req.PlayerID,
		"resource", response.Dumped,
		"tier", response.Tier,
		"got_reward", response.Reward != nil)

	respondJSON(w, http.StatusOK, response)
}

// DropTable handles the drop table listing endpoint
func (h *DumpHandler) DropTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, ErrMsgMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	table := h.dumpSvc.DropTable(r.Context())

	respondJSON(w, http.StatusOK, DataResponse{Data: table})
}
