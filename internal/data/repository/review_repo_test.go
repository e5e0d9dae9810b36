package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"yamdb-api/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReviewRepository_CreateMapsUniqueViolation(t *testing.T) {
	db := newMockDB(t)
	repo := NewReviewRepository(db, zap.NewNop())

	review := &entity.Review{
		ID: uuid.New(), TitleID: uuid.New(), AuthorID: uuid.New(),
		Text: "again", Score: 5, PubDate: time.Now(),
	}

	db.ExpectExec(sqlLike("INSERT INTO reviews (id, title_id, author_id, text, score, pub_date)")).
		WithArgs(review.ID, review.TitleID, review.AuthorID, review.Text, review.Score, review.PubDate).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reviews_title_id_author_id_key"})

	err := repo.Create(context.Background(), review)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestReviewRepository_FindByTitleIDOrdersNewestFirst(t *testing.T) {
	db := newMockDB(t)
	repo := NewReviewRepository(db, zap.NewNop())

	titleID, id, authorID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	db.ExpectQuery(sqlLike(
		"INNER JOIN users u ON u.id = r.author_id",
		"WHERE r.title_id = $1 ORDER BY r.pub_date DESC, r.id LIMIT $2 OFFSET $3",
	)).
		WithArgs(titleID, 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title_id", "author_id", "text", "score", "pub_date", "username"}).
			AddRow(id, titleID, authorID, "great", 9, now, "alice"))

	reviews, err := repo.FindByTitleID(context.Background(), titleID, 10, 0)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "alice", reviews[0].AuthorUsername)
	assert.Equal(t, 9, reviews[0].Score)
}
