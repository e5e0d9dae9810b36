package usecase

import (
	"context"

	"yamdb-api/internal/data/repository"
	"yamdb-api/internal/dto/request"
	"yamdb-api/pkg/token"
	"yamdb-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmationNotifier delivers a confirmation code to an email address.
type ConfirmationNotifier interface {
	SendConfirmationCode(ctx context.Context, email string, code int) error
}

// TokenIssuer mints the access token returned by the token exchange.
type TokenIssuer interface {
	IssueForUser(id token.Identity) (map[string]string, error)
}

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Genre    GenreService
	Title    TitleService
	Review   ReviewService
	Comment  CommentService
}

func NewService(
	repo *repository.Repository,
	notifier ConfirmationNotifier,
	issuer TokenIssuer,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, notifier, issuer, log),
		User:     NewUserService(repo.User, log),
		Category: NewCategoryService(repo.Category, log),
		Genre:    NewGenreService(repo.Genre, log),
		Title:    NewTitleService(repo, log),
		Review:   NewReviewService(repo, log),
		Comment:  NewCommentService(repo, log),
	}
}

// normalizePage clamps page and per_page into their accepted ranges.
func normalizePage(req *request.PaginatedRequest) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 {
		req.PerPage = utils.DefaultPerPage
	}
	if req.PerPage > utils.MaxPerPage {
		req.PerPage = utils.MaxPerPage
	}
}

// canModify reports whether the actor may edit or delete content authored by
// authorID.
func canModify(actor utils.Actor, authorID uuid.UUID) bool {
	return actor.UserID == authorID || actor.IsAdmin() || actor.IsModerator()
}
