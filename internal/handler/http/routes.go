package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	if len(h.corsAllowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.corsAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
			ExposedHeaders:   []string{traceIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Post("/auth/login", h.login)
	})

	// identity is resolved when a token is presented but never required
	router.Group(func(r chi.Router) {
		r.Use(h.withOptionalAuth)
		r.Get("/users", h.getUsers)
		r.Get("/users/{id}", h.getUser)
		r.Get("/users-detailed", h.listUsersDetailed)
		r.Post("/users", h.createUser)
		r.Put("/users/{id}", h.updateUser)
		r.Delete("/users/{id}", h.deleteUser)
	})

	return router
}
