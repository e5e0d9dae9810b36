package usecase

import (
	"context"
	"testing"

	"yamdb-api/internal/data/entity"
	"yamdb-api/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateProfile_NonAdminCannotChangeRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.addUser(t, "alice", entity.RoleUser)

	resp, err := f.svc.User.UpdateProfile(ctx, alice, &request.UserUpdateRequest{
		Bio:  ptr("reader"),
		Role: ptr("admin"),
	})
	require.NoError(t, err)
	assert.Equal(t, "reader", resp.Bio)
	assert.Equal(t, entity.RoleUser, resp.Role)

	stored, err := f.repo.User.FindByID(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, stored.Role)
}

func TestUpdateProfile_AdminMayChangeOwnRole(t *testing.T) {
	f := newFixture(t)
	admin := f.addUser(t, "root", entity.RoleAdmin)

	resp, err := f.svc.User.UpdateProfile(context.Background(), admin, &request.UserUpdateRequest{Role: ptr("moderator")})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleModerator, resp.Role)
}

func TestCreateUser_DefaultsAndDuplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.svc.User.CreateUser(ctx, &request.UserRequest{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, resp.Role)

	_, err = f.svc.User.CreateUser(ctx, &request.UserRequest{Username: "bob", Email: "other@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = f.svc.User.CreateUser(ctx, &request.UserRequest{Username: "carol", Email: "c@example.com", Role: "superuser"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUserByUsername_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addUser(t, "bob", entity.RoleUser)

	got, err := f.svc.User.GetByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)

	updated, err := f.svc.User.UpdateByUsername(ctx, "bob", &request.UserUpdateRequest{Role: ptr("moderator")})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleModerator, updated.Role)

	require.NoError(t, f.svc.User.DeleteByUsername(ctx, "bob"))

	_, err = f.svc.User.GetByUsername(ctx, "bob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetAllUsers_Search(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"alice", "alfred", "bob"} {
		f.addUser(t, name, entity.RoleUser)
	}

	page, err := f.svc.User.GetAllUsers(context.Background(), &request.PaginatedRequest{Search: "al"})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "alfred", page.Data[0].Username)
	assert.Equal(t, 1, page.Pagination.Page)
	assert.Equal(t, 10, page.Pagination.PerPage)
}
