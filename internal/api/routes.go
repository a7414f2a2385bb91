package api

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the Pokedex endpoints under /api.
func RegisterRoutes(r chi.Router, identify *IdentifyHandler, sessions *SessionHandler) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/identify", identify.Identify)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessions.CreateSession)
			r.Get("/{id}", sessions.GetSession)
			r.Delete("/{id}", sessions.DeleteSession)
			r.Post("/{id}/messages", sessions.PostMessage)
		})
	})
}
