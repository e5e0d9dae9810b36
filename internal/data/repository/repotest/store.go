// Package repotest provides in-memory implementations of the repository
// interfaces for service and handler tests.
package repotest

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"

	"yamdb-api/internal/data/entity"
	"yamdb-api/internal/data/repository"

	"github.com/google/uuid"
)

// Store holds every table in memory. All repositories returned by
// NewRepository share one Store so joins and cascades behave like Postgres.
type Store struct {
	mu sync.Mutex

	users       map[uuid.UUID]*entity.User
	categories  map[uuid.UUID]*entity.Category
	genres      map[uuid.UUID]*entity.Genre
	titles      map[uuid.UUID]*entity.Title
	titleGenres map[uuid.UUID][]uuid.UUID
	reviews     map[uuid.UUID]*entity.Review
	comments    map[uuid.UUID]*entity.Comment

	// Err, when set, is returned by every call.
	Err error
}

func NewStore() *Store {
	return &Store{
		users:       make(map[uuid.UUID]*entity.User),
		categories:  make(map[uuid.UUID]*entity.Category),
		genres:      make(map[uuid.UUID]*entity.Genre),
		titles:      make(map[uuid.UUID]*entity.Title),
		titleGenres: make(map[uuid.UUID][]uuid.UUID),
		reviews:     make(map[uuid.UUID]*entity.Review),
		comments:    make(map[uuid.UUID]*entity.Comment),
	}
}

// NewRepository wires all fakes over a fresh Store.
func NewRepository() (*repository.Repository, *Store) {
	s := NewStore()
	return &repository.Repository{
		User:     &UserRepo{s},
		Category: &CategoryRepo{s},
		Genre:    &GenreRepo{s},
		Title:    &TitleRepo{s},
		Review:   &ReviewRepo{s},
		Comment:  &CommentRepo{s},
	}, s
}

// UserCount reports how many users are stored.
func (s *Store) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// ReviewCount reports how many reviews are stored.
func (s *Store) ReviewCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reviews)
}

func contains(haystack, needle string) bool {
	return needle == "" || strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

// ==================== USERS ====================

type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, u := range r.s.users {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("create user %s: %w", user.Username, repository.ErrDuplicate)
		}
	}
	r.s.users[user.ID] = clone(user)
	return nil
}

func (r *UserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, u := range r.s.users {
		if match(u) {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r *UserRepo) filtered(search string) []*entity.User {
	var out []*entity.User
	for _, u := range r.s.users {
		if contains(u.Username, search) {
			out = append(out, clone(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

func (r *UserRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return page(r.filtered(search), limit, offset), nil
}

func (r *UserRepo) CountAll(_ context.Context, search string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.filtered(search))), nil
}

func (r *UserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	existing, ok := r.s.users[user.ID]
	if !ok {
		return fmt.Errorf("user %s not found", user.ID)
	}
	for _, u := range r.s.users {
		if u.ID != user.ID && (u.Username == user.Username || strings.EqualFold(u.Email, user.Email)) {
			return fmt.Errorf("update user %s: %w", user.ID, repository.ErrDuplicate)
		}
	}
	updated := clone(user)
	updated.ConfirmationCode = existing.ConfirmationCode
	r.s.users[user.ID] = updated
	return nil
}

func (r *UserRepo) SetConfirmationCode(_ context.Context, id uuid.UUID, code *int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	u, ok := r.s.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	u.ConfirmationCode = code
	return nil
}

func (r *UserRepo) ConsumeConfirmationCode(_ context.Context, id uuid.UUID, code int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return false, r.s.Err
	}
	u, ok := r.s.users[id]
	if !ok || u.ConfirmationCode == nil || *u.ConfirmationCode != code {
		return false, nil
	}
	u.ConfirmationCode = nil
	return true, nil
}

func (r *UserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.users[id]; !ok {
		return fmt.Errorf("user %s not found", id)
	}
	delete(r.s.users, id)
	for rid, rv := range r.s.reviews {
		if rv.AuthorID == id {
			r.s.deleteReviewLocked(rid)
		}
	}
	for cid, c := range r.s.comments {
		if c.AuthorID == id {
			delete(r.s.comments, cid)
		}
	}
	return nil
}

// ==================== CATEGORIES ====================

type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, c := range r.s.categories {
		if c.Slug == category.Slug {
			return fmt.Errorf("create category %s: %w", category.Slug, repository.ErrDuplicate)
		}
	}
	r.s.categories[category.ID] = clone(category)
	return nil
}

func (r *CategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, c := range r.s.categories {
		if c.Slug == slug {
			return clone(c), nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) filtered(search string) []*entity.Category {
	var out []*entity.Category
	for _, c := range r.s.categories {
		if contains(c.Name, search) {
			out = append(out, clone(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *CategoryRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return page(r.filtered(search), limit, offset), nil
}

func (r *CategoryRepo) CountAll(_ context.Context, search string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.filtered(search))), nil
}

func (r *CategoryRepo) DeleteBySlug(_ context.Context, slug string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for id, c := range r.s.categories {
		if c.Slug == slug {
			delete(r.s.categories, id)
			for _, t := range r.s.titles {
				if t.CategoryID != nil && *t.CategoryID == id {
					t.CategoryID = nil
				}
			}
			return nil
		}
	}
	return fmt.Errorf("category %s not found", slug)
}

// ==================== GENRES ====================

type GenreRepo struct{ s *Store }

func (r *GenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, g := range r.s.genres {
		if g.Slug == genre.Slug {
			return fmt.Errorf("create genre %s: %w", genre.Slug, repository.ErrDuplicate)
		}
	}
	r.s.genres[genre.ID] = clone(genre)
	return nil
}

func (r *GenreRepo) FindBySlug(_ context.Context, slug string) (*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, g := range r.s.genres {
		if g.Slug == slug {
			return clone(g), nil
		}
	}
	return nil, nil
}

func (r *GenreRepo) FindBySlugs(_ context.Context, slugs []string) ([]*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []*entity.Genre
	for _, g := range r.s.genres {
		if slices.Contains(slugs, g.Slug) {
			out = append(out, clone(g))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *GenreRepo) FindByTitleIDs(_ context.Context, titleIDs []uuid.UUID) (map[uuid.UUID][]*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make(map[uuid.UUID][]*entity.Genre, len(titleIDs))
	for _, tid := range titleIDs {
		var genres []*entity.Genre
		for _, gid := range r.s.titleGenres[tid] {
			if g, ok := r.s.genres[gid]; ok {
				genres = append(genres, clone(g))
			}
		}
		sort.Slice(genres, func(i, j int) bool { return genres[i].Name < genres[j].Name })
		if len(genres) > 0 {
			out[tid] = genres
		}
	}
	return out, nil
}

func (r *GenreRepo) filtered(search string) []*entity.Genre {
	var out []*entity.Genre
	for _, g := range r.s.genres {
		if contains(g.Name, search) {
			out = append(out, clone(g))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *GenreRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return page(r.filtered(search), limit, offset), nil
}

func (r *GenreRepo) CountAll(_ context.Context, search string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.filtered(search))), nil
}

func (r *GenreRepo) DeleteBySlug(_ context.Context, slug string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for id, g := range r.s.genres {
		if g.Slug == slug {
			delete(r.s.genres, id)
			for tid, gids := range r.s.titleGenres {
				r.s.titleGenres[tid] = slices.DeleteFunc(gids, func(x uuid.UUID) bool { return x == id })
			}
			return nil
		}
	}
	return fmt.Errorf("genre %s not found", slug)
}

// ==================== TITLES ====================

type TitleRepo struct{ s *Store }

func (r *TitleRepo) Create(_ context.Context, title *entity.Title, genreIDs []uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	stored := clone(title)
	stored.Category, stored.Genres, stored.Rating = nil, nil, nil
	r.s.titles[title.ID] = stored
	r.s.titleGenres[title.ID] = slices.Clone(genreIDs)
	return nil
}

// hydrateLocked fills the joined category and the computed rating.
func (s *Store) hydrateLocked(t *entity.Title) *entity.Title {
	out := clone(t)
	if t.CategoryID != nil {
		if c, ok := s.categories[*t.CategoryID]; ok {
			out.Category = clone(c)
		}
	}

	var sum, n int
	for _, rv := range s.reviews {
		if rv.TitleID == t.ID {
			sum += rv.Score
			n++
		}
	}
	if n > 0 {
		rating := int(math.Round(float64(sum) / float64(n)))
		out.Rating = &rating
	}
	return out
}

func (s *Store) matchLocked(t *entity.Title, f repository.TitleFilter) bool {
	if f.CategorySlug != "" {
		if t.CategoryID == nil {
			return false
		}
		c, ok := s.categories[*t.CategoryID]
		if !ok || c.Slug != f.CategorySlug {
			return false
		}
	}
	if f.GenreSlug != "" {
		found := false
		for _, gid := range s.titleGenres[t.ID] {
			if g, ok := s.genres[gid]; ok && g.Slug == f.GenreSlug {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if !contains(t.Name, f.Name) {
		return false
	}
	if f.Year != nil && t.Year != *f.Year {
		return false
	}
	return true
}

func (r *TitleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Title, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	t, ok := r.s.titles[id]
	if !ok {
		return nil, nil
	}
	return r.s.hydrateLocked(t), nil
}

func (r *TitleRepo) filtered(f repository.TitleFilter) []*entity.Title {
	var out []*entity.Title
	for _, t := range r.s.titles {
		if r.s.matchLocked(t, f) {
			out = append(out, r.s.hydrateLocked(t))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (r *TitleRepo) FindAll(_ context.Context, f repository.TitleFilter, limit, offset int) ([]*entity.Title, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return page(r.filtered(f), limit, offset), nil
}

func (r *TitleRepo) CountAll(_ context.Context, f repository.TitleFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.filtered(f))), nil
}

func (r *TitleRepo) Update(_ context.Context, title *entity.Title, genreIDs []uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.titles[title.ID]; !ok {
		return fmt.Errorf("title %s not found", title.ID)
	}
	stored := clone(title)
	stored.Category, stored.Genres, stored.Rating = nil, nil, nil
	r.s.titles[title.ID] = stored
	if genreIDs != nil {
		r.s.titleGenres[title.ID] = slices.Clone(genreIDs)
	}
	return nil
}

func (r *TitleRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.titles[id]; !ok {
		return fmt.Errorf("title %s not found", id)
	}
	delete(r.s.titles, id)
	delete(r.s.titleGenres, id)
	for rid, rv := range r.s.reviews {
		if rv.TitleID == id {
			r.s.deleteReviewLocked(rid)
		}
	}
	return nil
}

// ==================== REVIEWS ====================

type ReviewRepo struct{ s *Store }

func (s *Store) withAuthorLocked(rv *entity.Review) *entity.Review {
	out := clone(rv)
	if u, ok := s.users[rv.AuthorID]; ok {
		out.AuthorUsername = u.Username
	}
	return out
}

func (s *Store) deleteReviewLocked(id uuid.UUID) {
	delete(s.reviews, id)
	for cid, c := range s.comments {
		if c.ReviewID == id {
			delete(s.comments, cid)
		}
	}
}

func (r *ReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, rv := range r.s.reviews {
		if rv.TitleID == review.TitleID && rv.AuthorID == review.AuthorID {
			return fmt.Errorf("create review for title %s by %s: %w", review.TitleID, review.AuthorID, repository.ErrDuplicate)
		}
	}
	r.s.reviews[review.ID] = clone(review)
	return nil
}

func (r *ReviewRepo) find(match func(*entity.Review) bool) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, rv := range r.s.reviews {
		if match(rv) {
			return r.s.withAuthorLocked(rv), nil
		}
	}
	return nil, nil
}

func (r *ReviewRepo) FindByTitleAndID(_ context.Context, titleID, id uuid.UUID) (*entity.Review, error) {
	return r.find(func(rv *entity.Review) bool { return rv.TitleID == titleID && rv.ID == id })
}

func (r *ReviewRepo) FindByTitleAndAuthor(_ context.Context, titleID, authorID uuid.UUID) (*entity.Review, error) {
	return r.find(func(rv *entity.Review) bool { return rv.TitleID == titleID && rv.AuthorID == authorID })
}

func (r *ReviewRepo) byTitle(titleID uuid.UUID) []*entity.Review {
	var out []*entity.Review
	for _, rv := range r.s.reviews {
		if rv.TitleID == titleID {
			out = append(out, r.s.withAuthorLocked(rv))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.After(out[j].PubDate)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (r *ReviewRepo) FindByTitleID(_ context.Context, titleID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return page(r.byTitle(titleID), limit, offset), nil
}

func (r *ReviewRepo) CountByTitleID(_ context.Context, titleID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.byTitle(titleID))), nil
}

func (r *ReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	rv, ok := r.s.reviews[review.ID]
	if !ok {
		return fmt.Errorf("review %s not found", review.ID)
	}
	rv.Text, rv.Score = review.Text, review.Score
	return nil
}

func (r *ReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.reviews[id]; !ok {
		return fmt.Errorf("review %s not found", id)
	}
	r.s.deleteReviewLocked(id)
	return nil
}

// ==================== COMMENTS ====================

type CommentRepo struct{ s *Store }

func (s *Store) commentWithAuthorLocked(c *entity.Comment) *entity.Comment {
	out := clone(c)
	if u, ok := s.users[c.AuthorID]; ok {
		out.AuthorUsername = u.Username
	}
	return out
}

func (r *CommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.reviews[comment.ReviewID]; !ok {
		return fmt.Errorf("create comment on review %s: foreign key violation", comment.ReviewID)
	}
	r.s.comments[comment.ID] = clone(comment)
	return nil
}

func (r *CommentRepo) FindByReviewAndID(_ context.Context, reviewID, id uuid.UUID) (*entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	c, ok := r.s.comments[id]
	if !ok || c.ReviewID != reviewID {
		return nil, nil
	}
	return r.s.commentWithAuthorLocked(c), nil
}

func (r *CommentRepo) byReview(reviewID uuid.UUID) []*entity.Comment {
	var out []*entity.Comment
	for _, c := range r.s.comments {
		if c.ReviewID == reviewID {
			out = append(out, r.s.commentWithAuthorLocked(c))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.Before(out[j].PubDate)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func (r *CommentRepo) FindByReviewID(_ context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	return page(r.byReview(reviewID), limit, offset), nil
}

func (r *CommentRepo) CountByReviewID(_ context.Context, reviewID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.byReview(reviewID))), nil
}

func (r *CommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	c, ok := r.s.comments[comment.ID]
	if !ok {
		return fmt.Errorf("comment %s not found", comment.ID)
	}
	c.Text = comment.Text
	return nil
}

func (r *CommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	if _, ok := r.s.comments[id]; !ok {
		return fmt.Errorf("comment %s not found", id)
	}
	delete(r.s.comments, id)
	return nil
}

var (
	_ repository.UserRepository     = (*UserRepo)(nil)
	_ repository.CategoryRepository = (*CategoryRepo)(nil)
	_ repository.GenreRepository    = (*GenreRepo)(nil)
	_ repository.TitleRepository    = (*TitleRepo)(nil)
	_ repository.ReviewRepository   = (*ReviewRepo)(nil)
	_ repository.CommentRepository  = (*CommentRepo)(nil)
)
