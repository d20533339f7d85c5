package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/version", h.getVersion)

	router.Route("/api/binding", func(r chi.Router) {
		r.Get("/", h.getBinding)
		r.Post("/preview", h.previewSwitch)
		r.Post("/switch", h.switchBinding)
	})

	router.Route("/api/collections", func(r chi.Router) {
		r.Get("/", h.listCollections)
		r.Delete("/{id}", h.deleteCollection)
	})

	router.Route("/api/import", func(r chi.Router) {
		r.Post("/template", h.importTemplate)
		r.Post("/snapshot", h.importSnapshot)
	})
	router.Post("/api/restore", h.restoreBackup)

	router.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5, "application/json"))
		r.Get("/api/export/backup", h.exportBackup)
		r.Get("/api/export/collections/{id}/template", h.exportTemplate)
		r.Get("/api/export/collections/{id}/snapshot", h.exportSnapshot)
	})

	router.Get("/api/consistency", h.checkConsistency)
	router.Delete("/api/data", h.clearAll)

	router.Route("/api/templates/library", func(r chi.Router) {
		r.Get("/", h.listLibrary)
		r.Post("/{index}", h.createFromLibrary)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
