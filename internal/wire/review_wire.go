package wire

import (
	"yamdb-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, g guards) {
	const base = "/titles/{title_id}/reviews"

	// ==================== PUBLIC ROUTES ====================
	r.Get(base, reviewHandler.GetReviews)
	r.Get(base+"/{review_id}", reviewHandler.GetReview)

	// ==================== PROTECTED ROUTES ====================
	// Ownership is checked in the service: author, moderator or admin.
	r.Group(func(r chi.Router) {
		r.Use(g.authenticate)
		r.Post(base, reviewHandler.CreateReview)
		r.Patch(base+"/{review_id}", reviewHandler.UpdateReview)
		r.Delete(base+"/{review_id}", reviewHandler.DeleteReview)
	})
}
