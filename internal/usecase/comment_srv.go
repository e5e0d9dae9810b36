package usecase

import (
	"context"
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

type CommentService interface {
	GetReviewComments(ctx context.Context, titleID, reviewID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error)
	GetComment(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error)
	CreateComment(ctx context.Context, actor utils.Actor, titleID, reviewID string, req *request.CommentRequest) (*response.CommentResponse, error)
	UpdateComment(ctx context.Context, actor utils.Actor, titleID, reviewID, commentID string, req *request.CommentRequest) (*response.CommentResponse, error)
	DeleteComment(ctx context.Context, actor utils.Actor, titleID, reviewID, commentID string) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) GetReviewComments(ctx context.Context, titleID, reviewID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CommentResponse], error) {
	review, err := findReview(ctx, s.repo, s.log, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	normalizePage(req)

	comments, err := s.repo.Comment.FindByReviewID(ctx, review.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get comments", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("failed to get comments")
	}

	total, err := s.repo.Comment.CountByReviewID(ctx, review.ID)
	if err != nil {
		s.log.Error("Failed to count comments", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("failed to count comments")
	}

	data := make([]response.CommentResponse, len(comments))
	for i, c := range comments {
		data[i] = response.CommentToResponse(c)
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *commentService) GetComment(ctx context.Context, titleID, reviewID, commentID string) (*response.CommentResponse, error) {
	comment, err := s.find(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) CreateComment(ctx context.Context, actor utils.Actor, titleID, reviewID string, req *request.CommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := findReview(ctx, s.repo, s.log, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		ID:             uuid.New(),
		ReviewID:       review.ID,
		AuthorID:       actor.UserID,
		Text:           req.Text,
		PubDate:        time.Now(),
		AuthorUsername: actor.Username,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.log.Error("Failed to create comment", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("failed to create comment")
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("review_id", reviewID),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) UpdateComment(ctx context.Context, actor utils.Actor, titleID, reviewID, commentID string, req *request.CommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	comment, err := s.find(ctx, titleID, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	if !canModify(actor, comment.AuthorID) {
		return nil, fmt.Errorf("forbidden: only the author, a moderator or an admin can edit this comment")
	}

	comment.Text = req.Text
	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		s.log.Error("Failed to update comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, fmt.Errorf("failed to update comment")
	}

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) DeleteComment(ctx context.Context, actor utils.Actor, titleID, reviewID, commentID string) error {
	comment, err := s.find(ctx, titleID, reviewID, commentID)
	if err != nil {
		return err
	}

	if !canModify(actor, comment.AuthorID) {
		return fmt.Errorf("forbidden: only the author, a moderator or an admin can delete this comment")
	}

	if err := s.repo.Comment.Delete(ctx, comment.ID); err != nil {
		s.log.Error("Failed to delete comment", zap.Error(err), zap.String("comment_id", commentID))
		return fmt.Errorf("failed to delete comment")
	}

	s.log.Info("Comment deleted", zap.String("comment_id", commentID), zap.String("by", actor.Username))
	return nil
}

func (s *commentService) find(ctx context.Context, titleID, reviewID, commentID string) (*entity.Comment, error) {
	review, err := findReview(ctx, s.repo, s.log, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(commentID)
	if err != nil {
		return nil, fmt.Errorf("invalid comment id %q", commentID)
	}

	comment, err := s.repo.Comment.FindByReviewAndID(ctx, review.ID, id)
	if err != nil {
		s.log.Error("Failed to find comment", zap.Error(err), zap.String("comment_id", commentID))
		return nil, fmt.Errorf("failed to find comment")
	}
	if comment == nil {
		return nil, fmt.Errorf("comment %s not found", commentID)
	}
	return comment, nil
}
