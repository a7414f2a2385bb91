package api

import (
	"net/http"

	"github.com/phrazzld/pokedex-api/internal/api/shared"
	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/session"
)

// SessionHandler handles conversation-related HTTP requests
type SessionHandler struct {
	service   *session.Service
	resources domain.ResourceTemplates
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(service *session.Service, resources domain.ResourceTemplates) *SessionHandler {
	return &SessionHandler{
		service:   service,
		resources: resources,
	}
}

// CreateSession handles POST /api/sessions requests
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Create(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, snap)
}

// GetSession handles GET /api/sessions/{id} requests
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid session ID", err)
		return
	}

	snap, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, snap)
}

// PostMessage handles POST /api/sessions/{id}/messages requests
func (h *SessionHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid session ID", err)
		return
	}

	var req MessageRequest
	if !decodeTextRequest(w, r, &req) {
		return
	}

	ex, err := h.service.Submit(r.Context(), id, req.Text)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	resp := ExchangeResponse{
		User:    ex.User,
		Bot:     ex.Bot,
		Session: ex.Snapshot,
	}
	if ex.Bot.Data != nil {
		if res := resourcesFor(r, h.resources, *ex.Bot.Data); res != (domain.Resources{}) {
			resp.Resources = &res
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// DeleteSession handles DELETE /api/sessions/{id} requests
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid session ID", err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
