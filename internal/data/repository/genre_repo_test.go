package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenreRepository_FindByTitleIDsGroupsRows(t *testing.T) {
	db := newMockDB(t)
	repo := NewGenreRepository(db, zap.NewNop())

	t1, t2 := uuid.New(), uuid.New()
	drama, scifi := uuid.New(), uuid.New()
	now := time.Now()

	db.ExpectQuery(sqlLike("WHERE tg.title_id = ANY($1::uuid[])")).
		WithArgs([]string{t1.String(), t2.String()}).
		WillReturnRows(pgxmock.NewRows([]string{"title_id", "id", "name", "slug", "created_at"}).
			AddRow(t1, drama, "Drama", "drama", now).
			AddRow(t1, scifi, "Sci-Fi", "sci-fi", now).
			AddRow(t2, drama, "Drama", "drama", now))

	got, err := repo.FindByTitleIDs(context.Background(), []uuid.UUID{t1, t2})
	require.NoError(t, err)
	require.Len(t, got[t1], 2)
	require.Len(t, got[t2], 1)
	assert.Equal(t, "sci-fi", got[t1][1].Slug)
}

func TestGenreRepository_FindByTitleIDsSkipsEmptyInput(t *testing.T) {
	db := newMockDB(t)
	repo := NewGenreRepository(db, zap.NewNop())

	got, err := repo.FindByTitleIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCategoryRepository_SearchEscapesWildcards(t *testing.T) {
	db := newMockDB(t)
	repo := NewCategoryRepository(db, zap.NewNop())

	db.ExpectQuery(sqlLike("FROM categories WHERE ($1::text = '' OR name ILIKE '%' || $1 || '%')")).
		WithArgs(`a\\b\_c`, 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "slug", "created_at"}))

	categories, err := repo.FindAll(context.Background(), `a\b_c`, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "", escapeLike(""))
	assert.Equal(t, "plain", escapeLike("plain"))
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}
