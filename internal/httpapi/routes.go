package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/witchhunt-game/backend/internal/auth"
)

func SetupRoutes(api *API, authSvc *auth.Service, wsHandler http.HandlerFunc) http.Handler {
	r := chi.NewRouter()

	// Public routes
	r.Get("/healthz", Healthz)
	r.Post("/auth/signup", api.Signup)
	r.Post("/auth/login", api.Login)
	r.Get("/ws", wsHandler) // authenticates on handshake

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(authSvc.Middleware)

		r.Route("/rooms", func(r chi.Router) {
			r.Post("/", api.CreateRoom)
			r.Get("/", api.ListRooms)
			r.Get("/{roomID}", api.GetRoom)
			r.Delete("/{roomID}", api.DeleteRoom)
		})

		r.Get("/messages", api.ListMessages)
		r.Post("/messages", api.PostMessage)
	})

	return r
}
