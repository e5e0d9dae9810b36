package wire

import (
	"yamdb-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// Public: sign-up mails a confirmation code, token exchanges it for a JWT.
	r.Post("/auth/signup", authHandler.SignUp)
	r.Post("/auth/token", authHandler.Token)
}
