package wire

import (
	"net/http"

	"yamdb-api/internal/adaptor"
	"yamdb-api/internal/data/repository"
	"yamdb-api/internal/usecase"
	"yamdb-api/pkg/middleware"
	"yamdb-api/pkg/token"
	"yamdb-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the assembled HTTP router.
type App struct {
	Router *chi.Mux
}

// guards are the route-level middlewares shared by every wire function.
type guards struct {
	authenticate func(http.Handler) http.Handler
	admin        func(http.Handler) http.Handler
}

// Wiring builds services, handlers and routes on top of the repositories.
func Wiring(
	repo *repository.Repository,
	notifier usecase.ConfirmationNotifier,
	issuer *token.Issuer,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, notifier, issuer, logger)
	handler := adaptor.NewHandler(service, logger)

	g := guards{
		authenticate: middleware.Authenticate(issuer, repo.User, logger),
		admin:        middleware.Admin(logger),
	}

	return &App{
		Router: setupRouter(handler, g, logger),
	}
}

func setupRouter(handler *adaptor.Handler, g guards, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.StripSlashes)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w)
	})

	r.Route("/api/v1", func(r chi.Router) {
		wireAuth(r, handler.Auth)
		wireUser(r, handler.User, g)
		wireCategory(r, handler.Category, g)
		wireGenre(r, handler.Genre, g)
		wireTitle(r, handler.Title, g)
		wireReview(r, handler.Review, g)
		wireComment(r, handler.Comment, g)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
