package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"yamdb-api/internal/data/entity"
	"yamdb-api/internal/data/repository"
	"yamdb-api/internal/dto/request"
	"yamdb-api/internal/dto/response"
	"yamdb-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TitleService interface {
	GetTitles(ctx context.Context, req *request.TitleQuery) (*response.PaginatedResponse[response.TitleResponse], error)
	GetTitleByID(ctx context.Context, titleID string) (*response.TitleResponse, error)
	CreateTitle(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error)
	UpdateTitle(ctx context.Context, titleID string, req *request.TitleUpdateRequest) (*response.TitleResponse, error)
	DeleteTitle(ctx context.Context, titleID string) error
}

type titleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTitleService(repo *repository.Repository, log *zap.Logger) TitleService {
	return &titleService{
		repo: repo,
		log:  log.With(zap.String("service", "title")),
	}
}

func (s *titleService) GetTitles(ctx context.Context, req *request.TitleQuery) (*response.PaginatedResponse[response.TitleResponse], error) {
	normalizePage(&req.PaginatedRequest)

	filter := repository.TitleFilter{
		CategorySlug: req.Category,
		GenreSlug:    req.Genre,
		Name:         req.Name,
		Year:         req.Year,
	}

	titles, err := s.repo.Title.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get titles", zap.Error(err))
		return nil, fmt.Errorf("failed to get titles")
	}

	total, err := s.repo.Title.CountAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count titles", zap.Error(err))
		return nil, fmt.Errorf("failed to count titles")
	}

	if err := s.attachGenres(ctx, titles...); err != nil {
		return nil, err
	}

	data := make([]response.TitleResponse, len(titles))
	for i, t := range titles {
		data[i] = response.TitleToResponse(t)
	}

	return response.NewPaginatedResponse(data, req.Page, req.PerPage, total), nil
}

func (s *titleService) GetTitleByID(ctx context.Context, titleID string) (*response.TitleResponse, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, fmt.Errorf("invalid title id %q", titleID)
	}

	return s.load(ctx, id)
}

func (s *titleService) CreateTitle(ctx context.Context, req *request.TitleRequest) (*response.TitleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create title validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genreIDs, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	title := &entity.Title{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  &category.ID,
	}

	if err := s.repo.Title.Create(ctx, title, genreIDs); err != nil {
		s.log.Error("Failed to create title", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create title")
	}

	s.log.Info("Title created",
		zap.String("title_id", title.ID.String()),
		zap.String("name", title.Name),
		zap.Int("genre_count", len(genreIDs)),
	)

	return s.load(ctx, title.ID)
}

func (s *titleService) UpdateTitle(ctx context.Context, titleID string, req *request.TitleUpdateRequest) (*response.TitleResponse, error) {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return nil, fmt.Errorf("invalid title id %q", titleID)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update title validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find title", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("failed to update title")
	}
	if title == nil {
		return nil, fmt.Errorf("title %s not found", titleID)
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = req.Description
	}
	if req.Category != nil {
		category, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		title.CategoryID = &category.ID
	}

	var genreIDs []uuid.UUID
	if req.Genre != nil {
		if genreIDs, err = s.resolveGenres(ctx, req.Genre); err != nil {
			return nil, err
		}
	}
	title.UpdatedAt = time.Now()

	if err := s.repo.Title.Update(ctx, title, genreIDs); err != nil {
		s.log.Error("Failed to update title", zap.Error(err), zap.String("title_id", titleID))
		return nil, fmt.Errorf("failed to update title")
	}

	s.log.Info("Title updated", zap.String("title_id", titleID))
	return s.load(ctx, id)
}

func (s *titleService) DeleteTitle(ctx context.Context, titleID string) error {
	id, err := uuid.Parse(titleID)
	if err != nil {
		return fmt.Errorf("invalid title id %q", titleID)
	}

	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find title", zap.Error(err), zap.String("title_id", titleID))
		return fmt.Errorf("failed to delete title")
	}
	if title == nil {
		return fmt.Errorf("title %s not found", titleID)
	}

	if err := s.repo.Title.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete title", zap.Error(err), zap.String("title_id", titleID))
		return fmt.Errorf("failed to delete title")
	}

	s.log.Info("Title deleted", zap.String("title_id", titleID))
	return nil
}

func (s *titleService) load(ctx context.Context, id uuid.UUID) (*response.TitleResponse, error) {
	title, err := s.repo.Title.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find title", zap.Error(err), zap.String("title_id", id.String()))
		return nil, fmt.Errorf("failed to get title")
	}
	if title == nil {
		return nil, fmt.Errorf("title %s not found", id)
	}

	if err := s.attachGenres(ctx, title); err != nil {
		return nil, err
	}

	resp := response.TitleToResponse(title)
	return &resp, nil
}

// attachGenres loads the genres of all titles in one query.
func (s *titleService) attachGenres(ctx context.Context, titles ...*entity.Title) error {
	if len(titles) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(titles))
	for i, t := range titles {
		ids[i] = t.ID
	}

	byTitle, err := s.repo.Genre.FindByTitleIDs(ctx, ids)
	if err != nil {
		s.log.Error("Failed to load title genres", zap.Error(err))
		return fmt.Errorf("failed to load title genres")
	}

	for _, t := range titles {
		t.Genres = byTitle[t.ID]
	}
	return nil
}

func (s *titleService) resolveCategory(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := s.repo.Category.FindBySlug(ctx, slug)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("slug", slug))
		return nil, fmt.Errorf("failed to resolve category")
	}
	if category == nil {
		return nil, fmt.Errorf("invalid category: slug %s does not exist", slug)
	}
	return category, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]uuid.UUID, error) {
	genres, err := s.repo.Genre.FindBySlugs(ctx, slugs)
	if err != nil {
		s.log.Error("Failed to find genres", zap.Error(err), zap.Strings("slugs", slugs))
		return nil, fmt.Errorf("failed to resolve genres")
	}

	ids := make([]uuid.UUID, 0, len(genres))
	found := make([]string, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
		found = append(found, g.Slug)
	}

	var missing []string
	for _, slug := range slugs {
		if !slices.Contains(found, slug) {
			missing = append(missing, slug)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("invalid genre: slug %s does not exist", strings.Join(missing, ", "))
	}

	return ids, nil
}
