package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/pokedex-api/internal/api/shared"
	"github.com/phrazzld/pokedex-api/internal/domain"
	"github.com/phrazzld/pokedex-api/internal/platform/logger"
	"github.com/phrazzld/pokedex-api/internal/session"
)

// IdentifyHandler handles stateless identification requests
type IdentifyHandler struct {
	service   *session.Service
	resources domain.ResourceTemplates
}

// NewIdentifyHandler creates a new IdentifyHandler
func NewIdentifyHandler(service *session.Service, resources domain.ResourceTemplates) *IdentifyHandler {
	return &IdentifyHandler{
		service:   service,
		resources: resources,
	}
}

// Identify handles POST /api/identify requests.
// A fault inside the identifier is not an HTTP error: the response is 200
// with the fixed failure record.
func (h *IdentifyHandler) Identify(w http.ResponseWriter, r *http.Request) {
	var req IdentifyRequest
	if !decodeTextRequest(w, r, &req) {
		return
	}

	result, err := h.service.Identify(r.Context(), req.Text)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, IdentifyResponse{
		IdentificationResult: result,
		Resources:            resourcesFor(r, h.resources, result),
	})
}

// resourcesFor returns the media URLs for result, or zero Resources when it
// has no Pokedex number.
func resourcesFor(r *http.Request, templates domain.ResourceTemplates, result domain.IdentificationResult) domain.Resources {
	res, err := templates.For(result)
	if err != nil {
		logger.FromContext(r.Context()).DebugContext(r.Context(), "no resources for result",
			slog.Bool("identified", result.Identified),
			slog.String("reason", err.Error()))
		return domain.Resources{}
	}
	return res
}
