package usecase

import (
	"context"
	"testing"

	"yamdb-api/internal/data/entity"
	"yamdb-api/internal/data/repository"
	"yamdb-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview_SecondByAuthorRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.addUser(t, "alice", entity.RoleUser)
	titleID := f.addTitle(t, "Solaris")

	created, err := f.svc.Review.CreateReview(ctx, alice, titleID, &request.ReviewRequest{Text: "great", Score: 9})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Author)
	assert.Equal(t, 9, created.Score)

	_, err = f.svc.Review.CreateReview(ctx, alice, titleID, &request.ReviewRequest{Text: "again", Score: 3})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Equal(t, 1, f.store.ReviewCount())

	text := "changed my mind"
	score := 4
	updated, err := f.svc.Review.UpdateReview(ctx, alice, titleID, created.ID, &request.ReviewUpdateRequest{Text: &text, Score: &score})
	require.NoError(t, err)
	assert.Equal(t, text, updated.Text)
	assert.Equal(t, 4, updated.Score)
}

func TestCreateReview_SameAuthorDifferentTitles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.addUser(t, "alice", entity.RoleUser)

	_, err := f.svc.Review.CreateReview(ctx, alice, f.addTitle(t, "A"), &request.ReviewRequest{Text: "a", Score: 5})
	require.NoError(t, err)
	_, err = f.svc.Review.CreateReview(ctx, alice, f.addTitle(t, "B"), &request.ReviewRequest{Text: "b", Score: 5})
	require.NoError(t, err)
}

// lookupBlindReviews hides existing reviews from the pre-insert check so the
// storage constraint is the one that fires.
type lookupBlindReviews struct {
	repository.ReviewRepository
}

func (lookupBlindReviews) FindByTitleAndAuthor(context.Context, uuid.UUID, uuid.UUID) (*entity.Review, error) {
	return nil, nil
}

func TestCreateReview_StorageConflictMapsToAlreadyReviewed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.addUser(t, "alice", entity.RoleUser)
	titleID := f.addTitle(t, "Solaris")

	f.repo.Review = lookupBlindReviews{f.repo.Review}
	svc := NewReviewService(f.repo, zapNop())

	_, err := svc.CreateReview(ctx, alice, titleID, &request.ReviewRequest{Text: "one", Score: 7})
	require.NoError(t, err)

	_, err = svc.CreateReview(ctx, alice, titleID, &request.ReviewRequest{Text: "two", Score: 7})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreateReview_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.addUser(t, "alice", entity.RoleUser)
	titleID := f.addTitle(t, "Solaris")

	for _, req := range []*request.ReviewRequest{
		{Text: "", Score: 5},
		{Text: "x", Score: 0},
		{Text: "x", Score: 11},
	} {
		_, err := f.svc.Review.CreateReview(ctx, alice, titleID, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	}

	_, err := f.svc.Review.CreateReview(ctx, alice, uuid.NewString(), &request.ReviewRequest{Text: "x", Score: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = f.svc.Review.CreateReview(ctx, alice, "not-a-uuid", &request.ReviewRequest{Text: "x", Score: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestUpdateReview_Permissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.addUser(t, "alice", entity.RoleUser)
	bob := f.addUser(t, "bob", entity.RoleUser)
	mod := f.addUser(t, "mod", entity.RoleModerator)
	admin := f.addUser(t, "root", entity.RoleAdmin)
	titleID := f.addTitle(t, "Solaris")

	created, err := f.svc.Review.CreateReview(ctx, alice, titleID, &request.ReviewRequest{Text: "mine", Score: 8})
	require.NoError(t, err)

	text := "hijacked"
	_, err = f.svc.Review.UpdateReview(ctx, bob, titleID, created.ID, &request.ReviewUpdateRequest{Text: &text})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	err = f.svc.Review.DeleteReview(ctx, bob, titleID, created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	text = "moderated"
	updated, err := f.svc.Review.UpdateReview(ctx, mod, titleID, created.ID, &request.ReviewUpdateRequest{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, "moderated", updated.Text)
	assert.Equal(t, "alice", updated.Author)

	require.NoError(t, f.svc.Review.DeleteReview(ctx, admin, titleID, created.ID))
	assert.Equal(t, 0, f.store.ReviewCount())
}

func TestGetReview_ScopedToTitle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.addUser(t, "alice", entity.RoleUser)
	titleID := f.addTitle(t, "Solaris")
	otherID := f.addTitle(t, "Stalker")

	created, err := f.svc.Review.CreateReview(ctx, alice, titleID, &request.ReviewRequest{Text: "x", Score: 5})
	require.NoError(t, err)

	got, err := f.svc.Review.GetReview(ctx, titleID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.svc.Review.GetReview(ctx, otherID, created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetTitleReviews_Paginated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	titleID := f.addTitle(t, "Solaris")

	for _, name := range []string{"a1", "a2", "a3"} {
		actor := f.addUser(t, name, entity.RoleUser)
		_, err := f.svc.Review.CreateReview(ctx, actor, titleID, &request.ReviewRequest{Text: name, Score: 5})
		require.NoError(t, err)
	}

	page, err := f.svc.Review.GetTitleReviews(ctx, titleID, &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}
