package wire

import (
	"yamdb-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler, g guards) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.GetCategories)

		r.Group(func(r chi.Router) {
			r.Use(g.authenticate, g.admin)
			r.Post("/", categoryHandler.CreateCategory)
			r.Delete("/{slug}", categoryHandler.DeleteCategory)
		})
	})
}
