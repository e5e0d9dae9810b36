package wire

import (
	"yamdb-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTitle(r chi.Router, titleHandler *adaptor.TitleHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/titles", titleHandler.GetTitles)
	r.Get("/titles/{title_id}", titleHandler.GetTitleByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.authenticate, g.admin)
		r.Post("/titles", titleHandler.CreateTitle)
		r.Patch("/titles/{title_id}", titleHandler.UpdateTitle)
		r.Delete("/titles/{title_id}", titleHandler.DeleteTitle)
	})
}
