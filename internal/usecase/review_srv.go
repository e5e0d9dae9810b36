package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yamdb-api/internal/data/entity"
	"yamdb-api/internal/data/repository"
	"yamdb-api/internal/dto/request"
	"yamdb-api/internal/dto/response"
	"yamdb-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrAlreadyReviewed rejects a second review of the same title by one author.
var ErrAlreadyReviewed = errors.New("you have already reviewed this title")

type ReviewService interface {
	GetTitleReviews(ctx context.Context, titleID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	GetReview(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error)
	CreateReview(ctx context.Context, actor utils.Actor, titleID string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, actor utils.Actor, titleID, reviewID string, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, actor utils.Actor, titleID, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) GetTitleReviews(ctx context.Context, titleID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	title, err := findTitle(ctx, s.repo, s.log, titleID)
	if err != nil {
		return nil, err
	}

	normalizePage(req)

	reviews, err := s.repo.Review.FindByTitleID(ctx, title.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get title reviews", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("failed to get reviews")
	}

	total, err := s.repo.Review.CountByTitleID(ctx, title.ID)
	if err != nil {
		s.log.Error("Failed to count title reviews", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("failed to count reviews")
	}

	data := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		data[i] = response.ReviewToResponse(review)
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *reviewService) GetReview(ctx context.Context, titleID, reviewID string) (*response.ReviewResponse, error) {
	review, err := findReview(ctx, s.repo, s.log, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// CreateReview checks uniqueness against the resolved title; the storage
// constraint backs the check for concurrent requests.
func (s *reviewService) CreateReview(ctx context.Context, actor utils.Actor, titleID string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	title, err := findTitle(ctx, s.repo, s.log, titleID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Review.FindByTitleAndAuthor(ctx, title.ID, actor.UserID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, fmt.Errorf("failed to check existing review")
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	review := &entity.Review{
		ID:             uuid.New(),
		TitleID:        title.ID,
		AuthorID:       actor.UserID,
		Text:           req.Text,
		Score:          req.Score,
		PubDate:        time.Now(),
		AuthorUsername: actor.Username,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyReviewed
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("author_id", actor.UserID.String()),
			zap.String("title_id", titleID),
		)
		return nil, fmt.Errorf("failed to create review")
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("title_id", titleID),
		zap.Int("score", review.Score),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, actor utils.Actor, titleID, reviewID string, req *request.ReviewUpdateRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := findReview(ctx, s.repo, s.log, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	if !canModify(actor, review.AuthorID) {
		return nil, fmt.Errorf("forbidden: only the author, a moderator or an admin can edit this review")
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		review.Score = *req.Score
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("failed to update review")
	}

	s.log.Info("Review updated", zap.String("review_id", reviewID), zap.String("by", actor.Username))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, actor utils.Actor, titleID, reviewID string) error {
	review, err := findReview(ctx, s.repo, s.log, titleID, reviewID)
	if err != nil {
		return err
	}

	if !canModify(actor, review.AuthorID) {
		return fmt.Errorf("forbidden: only the author, a moderator or an admin can delete this review")
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("failed to delete review")
	}

	s.log.Info("Review deleted", zap.String("review_id", reviewID), zap.String("by", actor.Username))
	return nil
}

func findTitle(ctx context.Context, repo *repository.Repository, log *zap.Logger, titleID string) (*entity.Title, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, fmt.Errorf("invalid title id %q", titleID)
	}

	title, err := repo.Title.FindByID(ctx, id)
	if err != nil {
		log.Error("Failed to find title", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("failed to find title")
	}
	if title == nil {
		return nil, fmt.Errorf("title %s not found", titleID)
	}
	return title, nil
}

// findReview resolves a review scoped to its title.
func findReview(ctx context.Context, repo *repository.Repository, log *zap.Logger, titleID, reviewID string) (*entity.Review, error) {
	title, err := findTitle(ctx, repo, log, titleID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review id %q", reviewID)
	}

	review, err := repo.Review.FindByTitleAndID(ctx, title.ID, id)
	if err != nil {
		log.Error("Failed to find review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("failed to find review")
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}
	return review, nil
}
