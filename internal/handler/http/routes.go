package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getVersion)

	router.Route("/api/sync", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/status", h.getStatus)
		r.Post("/trigger", h.triggerSync)

		r.Post("/queue/{stream}", h.queueItem)
		r.Delete("/queue", h.clearQueue)
		r.Delete("/queue/{stream}", h.clearQueue)

		r.Get("/preferences", h.getPreferences)
		r.Put("/preferences", h.putPreferences)

		r.Put("/connectivity", h.putConnectivity)
	})

	return router
}
