package usecase

import (
	"context"
	"testing"

	"yamdb-api/internal/data/entity"
	"yamdb-api/internal/dto/request"
	"yamdb-api/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTitle_ResolvesSlugs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addCategory(t, "Films", "films")
	f.addGenre(t, "Drama", "drama")
	f.addGenre(t, "Sci-Fi", "sci-fi")

	desc := "Ocean planet"
	title, err := f.svc.Title.CreateTitle(ctx, &request.TitleRequest{
		Name:        "Solaris",
		Year:        1972,
		Description: &desc,
		Genre:       []string{"drama", "sci-fi"},
		Category:    "films",
	})
	require.NoError(t, err)

	assert.Equal(t, "Solaris", title.Name)
	assert.Nil(t, title.Rating)
	assert.Equal(t, &response.CategoryResponse{Name: "Films", Slug: "films"}, title.Category)
	assert.ElementsMatch(t, []response.GenreResponse{
		{Name: "Drama", Slug: "drama"},
		{Name: "Sci-Fi", Slug: "sci-fi"},
	}, title.Genre)
}

func TestCreateTitle_UnknownSlugs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addCategory(t, "Films", "films")
	f.addGenre(t, "Drama", "drama")

	_, err := f.svc.Title.CreateTitle(ctx, &request.TitleRequest{
		Name: "X", Year: 2000, Genre: []string{"drama"}, Category: "books",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")

	_, err = f.svc.Title.CreateTitle(ctx, &request.TitleRequest{
		Name: "X", Year: 2000, Genre: []string{"drama", "horror"}, Category: "films",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid genre")
	assert.Contains(t, err.Error(), "horror")
}

func TestCreateTitle_FutureYearRejected(t *testing.T) {
	f := newFixture(t)
	f.addCategory(t, "Films", "films")
	f.addGenre(t, "Drama", "drama")

	_, err := f.svc.Title.CreateTitle(context.Background(), &request.TitleRequest{
		Name: "Later", Year: 3000, Genre: []string{"drama"}, Category: "films",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestTitle_RatingIsRoundedAverage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	titleID := f.addTitle(t, "Solaris")

	for i, score := range []int{10, 9, 8, 8} {
		actor := f.addUser(t, []string{"a", "b", "c", "d"}[i], entity.RoleUser)
		_, err := f.svc.Review.CreateReview(ctx, actor, titleID, &request.ReviewRequest{Text: "x", Score: score})
		require.NoError(t, err)
	}

	title, err := f.svc.Title.GetTitleByID(ctx, titleID)
	require.NoError(t, err)
	require.NotNil(t, title.Rating)
	assert.Equal(t, 9, *title.Rating)
}

func TestGetTitles_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addCategory(t, "Films", "films")
	f.addCategory(t, "Books", "books")
	f.addGenre(t, "Drama", "drama")
	f.addGenre(t, "Comedy", "comedy")

	for _, req := range []*request.TitleRequest{
		{Name: "Solaris", Year: 1972, Genre: []string{"drama"}, Category: "films"},
		{Name: "Stalker", Year: 1979, Genre: []string{"drama"}, Category: "films"},
		{Name: "Three Men in a Boat", Year: 1889, Genre: []string{"comedy"}, Category: "books"},
	} {
		_, err := f.svc.Title.CreateTitle(ctx, req)
		require.NoError(t, err)
	}

	year := 1979
	cases := []struct {
		name  string
		query request.TitleQuery
		want  []string
	}{
		{"all", request.TitleQuery{}, []string{"Solaris", "Stalker", "Three Men in a Boat"}},
		{"category", request.TitleQuery{Category: "books"}, []string{"Three Men in a Boat"}},
		{"genre", request.TitleQuery{Genre: "drama"}, []string{"Solaris", "Stalker"}},
		{"name", request.TitleQuery{Name: "sol"}, []string{"Solaris"}},
		{"year", request.TitleQuery{Year: &year}, []string{"Stalker"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.query
			page, err := f.svc.Title.GetTitles(ctx, &q)
			require.NoError(t, err)

			var names []string
			for _, title := range page.Data {
				names = append(names, title.Name)
			}
			assert.Equal(t, tc.want, names)
			assert.Equal(t, int64(len(tc.want)), page.Pagination.Total)
		})
	}
}

func TestUpdateTitle_PartialAndGenreReplace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addCategory(t, "Films", "films")
	f.addGenre(t, "Drama", "drama")
	f.addGenre(t, "Comedy", "comedy")

	created, err := f.svc.Title.CreateTitle(ctx, &request.TitleRequest{
		Name: "Solaris", Year: 1972, Genre: []string{"drama"}, Category: "films",
	})
	require.NoError(t, err)

	name := "Solaris (1972)"
	updated, err := f.svc.Title.UpdateTitle(ctx, created.ID, &request.TitleUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, []response.GenreResponse{{Name: "Drama", Slug: "drama"}}, updated.Genre)

	updated, err = f.svc.Title.UpdateTitle(ctx, created.ID, &request.TitleUpdateRequest{Genre: []string{"comedy"}})
	require.NoError(t, err)
	assert.Equal(t, []response.GenreResponse{{Name: "Comedy", Slug: "comedy"}}, updated.Genre)
}

func TestDeleteCategory_LeavesTitleWithoutCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addCategory(t, "Films", "films")
	f.addGenre(t, "Drama", "drama")

	created, err := f.svc.Title.CreateTitle(ctx, &request.TitleRequest{
		Name: "Solaris", Year: 1972, Genre: []string{"drama"}, Category: "films",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Category.DeleteCategory(ctx, "films"))

	title, err := f.svc.Title.GetTitleByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, title.Category)

	err = f.svc.Category.DeleteCategory(ctx, "films")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteTitle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	titleID := f.addTitle(t, "Solaris")

	require.NoError(t, f.svc.Title.DeleteTitle(ctx, titleID))

	_, err := f.svc.Title.GetTitleByID(ctx, titleID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
