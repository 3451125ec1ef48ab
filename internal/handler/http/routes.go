package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/params", h.params)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/keys", func(r chi.Router) {
			r.Get("/params", h.getKeyParams)
			r.Get("/master", h.getWrappedMasterKey)
			r.Put("/master", h.rotateMasterKey)
		})

		r.Route("/api/recovery-key", func(r chi.Router) {
			r.Get("/", h.getRecoveryKey)
			r.Post("/", h.saveRecoveryKey)
			r.Delete("/", h.deleteRecoveryKey)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
