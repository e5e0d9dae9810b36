package wire

import (
	"yamdb-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user management routes with role-based access control
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g guards) {
	r.Route("/users", func(r chi.Router) {
		r.Use(g.authenticate)

		// Own profile, registered before /{username} so "me" never matches it
		r.Get("/me", userHandler.GetProfile)
		r.Patch("/me", userHandler.UpdateProfile)

		r.Group(func(r chi.Router) {
			r.Use(g.admin)

			r.Get("/", userHandler.GetAllUsers)    // GET /api/v1/users?search=&page=1&per_page=10
			r.Post("/", userHandler.CreateUser)    // POST /api/v1/users
			r.Get("/{username}", userHandler.GetUser)
			r.Patch("/{username}", userHandler.UpdateUser)
			r.Delete("/{username}", userHandler.DeleteUser)
		})
	})
}
