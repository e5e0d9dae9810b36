package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"yamdb-api/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var titleColumns = []string{
	"id", "name", "year", "description", "category_id", "created_at", "updated_at",
	"id", "name", "slug", "created_at", "rating",
}

func TestTitleRepository_FindByIDScansCategoryAndRating(t *testing.T) {
	db := newMockDB(t)
	repo := NewTitleRepository(db, zap.NewNop())

	id, catID := uuid.New(), uuid.New()
	now := time.Now()

	db.ExpectQuery(sqlLike(
		"ROUND(AVG(r.score))::int AS rating",
		"LEFT JOIN reviews r ON r.title_id = t.id WHERE t.id = $1 GROUP BY t.id, c.id",
	)).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(titleColumns).AddRow(
			id, "Solaris", 1972, ptr("space"), &catID, now, now,
			&catID, ptr("Films"), ptr("films"), &now, ptr(8),
		))

	title, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, title)
	assert.Equal(t, "Solaris", title.Name)
	assert.Equal(t, "space", *title.Description)
	require.NotNil(t, title.Category)
	assert.Equal(t, "films", title.Category.Slug)
	require.NotNil(t, title.Rating)
	assert.Equal(t, 8, *title.Rating)
}

func TestTitleRepository_FindByIDWithoutReviewsOrCategory(t *testing.T) {
	db := newMockDB(t)
	repo := NewTitleRepository(db, zap.NewNop())

	id := uuid.New()
	now := time.Now()

	db.ExpectQuery(sqlLike("WHERE t.id = $1")).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(titleColumns).AddRow(
			id, "Orphan", 2001, nil, nil, now, now,
			nil, nil, nil, nil, nil,
		))

	title, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, title.Category)
	assert.Nil(t, title.Rating)
	assert.Nil(t, title.Description)
}

func TestTitleRepository_FindByIDMissing(t *testing.T) {
	db := newMockDB(t)
	repo := NewTitleRepository(db, zap.NewNop())

	id := uuid.New()
	db.ExpectQuery(sqlLike("WHERE t.id = $1")).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(titleColumns))

	title, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, title)
}

func TestTitleRepository_FindAllBindsFiltersInOrder(t *testing.T) {
	db := newMockDB(t)
	repo := NewTitleRepository(db, zap.NewNop())

	year := 1999
	filter := TitleFilter{CategorySlug: "films", GenreSlug: "drama", Name: "50% off", Year: &year}

	db.ExpectQuery(sqlLike(
		"WHERE c.slug = $1 AND EXISTS",
		"g.slug = $2)",
		"AND t.name ILIKE '%' || $3 || '%' AND t.year = $4",
		"GROUP BY t.id, c.id ORDER BY t.name, t.id LIMIT $5 OFFSET $6",
	)).
		WithArgs("films", "drama", `50\% off`, 1999, 20, 40).
		WillReturnRows(pgxmock.NewRows(titleColumns))

	titles, err := repo.FindAll(context.Background(), filter, 20, 40)
	require.NoError(t, err)
	assert.Empty(t, titles)
}

func TestTitleRepository_CountAllUsesSameFilter(t *testing.T) {
	db := newMockDB(t)
	repo := NewTitleRepository(db, zap.NewNop())

	db.ExpectQuery(sqlLike("SELECT COUNT(*) FROM titles t LEFT JOIN categories c", "WHERE c.slug = $1")).
		WithArgs("books").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	total, err := repo.CountAll(context.Background(), TitleFilter{CategorySlug: "books"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func newTitle() *entity.Title {
	now := time.Now()
	catID := uuid.New()
	return &entity.Title{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:       "Stalker",
		Year:       1979,
		CategoryID: &catID,
	}
}

func TestTitleRepository_CreateLinksGenresInOneTransaction(t *testing.T) {
	db := newMockDB(t)
	repo := NewTitleRepository(db, zap.NewNop())

	title := newTitle()
	g1, g2 := uuid.New(), uuid.New()

	db.ExpectBegin()
	db.ExpectExec(sqlLike("INSERT INTO titles")).
		WithArgs(title.ID, title.Name, title.Year, title.Description, title.CategoryID, title.CreatedAt, title.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	db.ExpectExec(sqlLike("INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2), ($3, $4) ON CONFLICT DO NOTHING")).
		WithArgs(title.ID, g1, title.ID, g2).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))
	db.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), title, []uuid.UUID{g1, g2}))
}

func TestTitleRepository_CreateRollsBackWhenLinkFails(t *testing.T) {
	db := newMockDB(t)
	repo := NewTitleRepository(db, zap.NewNop())

	title := newTitle()
	g1 := uuid.New()

	db.ExpectBegin()
	db.ExpectExec(sqlLike("INSERT INTO titles")).
		WithArgs(title.ID, title.Name, title.Year, title.Description, title.CategoryID, title.CreatedAt, title.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	db.ExpectExec(sqlLike("INSERT INTO title_genres")).
		WithArgs(title.ID, g1).
		WillReturnError(errors.New("foreign key violation"))
	db.ExpectRollback()

	err := repo.Create(context.Background(), title, []uuid.UUID{g1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "link 1 genres")
}

func TestTitleRepository_UpdateKeepsGenresWhenNil(t *testing.T) {
	db := newMockDB(t)
	repo := NewTitleRepository(db, zap.NewNop())

	title := newTitle()

	db.ExpectBegin()
	db.ExpectExec(sqlLike("UPDATE titles SET name = $2")).
		WithArgs(title.ID, title.Name, title.Year, title.Description, title.CategoryID, title.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), title, nil))
}

func TestTitleRepository_UpdateReplacesGenres(t *testing.T) {
	db := newMockDB(t)
	repo := NewTitleRepository(db, zap.NewNop())

	title := newTitle()
	g1 := uuid.New()

	db.ExpectBegin()
	db.ExpectExec(sqlLike("UPDATE titles")).
		WithArgs(title.ID, title.Name, title.Year, title.Description, title.CategoryID, title.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	db.ExpectExec(sqlLike("DELETE FROM title_genres WHERE title_id = $1")).
		WithArgs(title.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))
	db.ExpectExec(sqlLike("INSERT INTO title_genres")).
		WithArgs(title.ID, g1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	db.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), title, []uuid.UUID{g1}))
}

func TestTitleRepository_UpdateMissingTitle(t *testing.T) {
	db := newMockDB(t)
	repo := NewTitleRepository(db, zap.NewNop())

	title := newTitle()

	db.ExpectBegin()
	db.ExpectExec(sqlLike("UPDATE titles")).
		WithArgs(title.ID, title.Name, title.Year, title.Description, title.CategoryID, title.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	db.ExpectRollback()

	err := repo.Update(context.Background(), title, []uuid.UUID{uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
