package wire

import (
	"yamdb-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler, g guards) {
	const base = "/titles/{title_id}/reviews/{review_id}/comments"

	r.Get(base, commentHandler.GetComments)
	r.Get(base+"/{comment_id}", commentHandler.GetComment)

	r.Group(func(r chi.Router) {
		r.Use(g.authenticate)
		r.Post(base, commentHandler.CreateComment)
		r.Patch(base+"/{comment_id}", commentHandler.UpdateComment)
		r.Delete(base+"/{comment_id}", commentHandler.DeleteComment)
	})
}
