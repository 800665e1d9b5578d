// Package api assembles the HTTP query surface over the island store:
// generation, listing, retrieval and the read-only spatial queries.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func SetupRoutes(handler *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	for _, middleware := range SetupMiddleware() {
		r.Use(middleware)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Health check endpoint
	r.Get("/health", handler.HealthCheck)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/templates", handler.ListTemplates)

		r.Route("/islands", func(r chi.Router) {
			r.Post("/", handler.CreateIsland)
			r.Get("/", handler.ListIslands)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.GetIsland)
				r.Delete("/", handler.DeleteIsland)
				r.Get("/region", handler.GetRegionAt)
				r.Get("/regions", handler.QueryRegions)
				r.Get("/regions/{regionID}/neighbors", handler.GetNeighbors)
			})
		})
	})

	return r
}
