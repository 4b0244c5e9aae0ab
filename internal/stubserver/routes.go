package stubserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/shelfsync/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/items", func(r chi.Router) {
		r.Post("/", h.push(models.EntityItem))
		r.Put("/{id}", h.push(models.EntityItem))
		r.Delete("/{id}", h.push(models.EntityItem))
		r.Get("/{id}", h.fetch(models.EntityItem))
	})

	router.Route("/api/categories", func(r chi.Router) {
		r.Post("/", h.push(models.EntityCategory))
		r.Put("/{id}", h.push(models.EntityCategory))
		r.Delete("/{id}", h.push(models.EntityCategory))
		r.Get("/{id}", h.fetch(models.EntityCategory))
	})

	return router
}
