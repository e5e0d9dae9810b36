package wire

import (
	"yamdb-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireGenre(r chi.Router, genreHandler *adaptor.GenreHandler, g guards) {
	r.Route("/genres", func(r chi.Router) {
		r.Get("/", genreHandler.GetGenres)

		r.Group(func(r chi.Router) {
			r.Use(g.authenticate, g.admin)
			r.Post("/", genreHandler.CreateGenre)
			r.Delete("/{slug}", genreHandler.DeleteGenre)
		})
	})
}
