package usecase

import (
	"context"
	"testing"
	"time"

	"yamdb-api/internal/data/entity"
	"yamdb-api/internal/data/repository"
	"yamdb-api/internal/data/repository/repotest"
	"yamdb-api/pkg/token"
	"yamdb-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sentCode struct {
	email string
	code  int
}

type recordingNotifier struct {
	sent []sentCode
	err  error
}

func (n *recordingNotifier) SendConfirmationCode(_ context.Context, email string, code int) error {
	n.sent = append(n.sent, sentCode{email: email, code: code})
	return n.err
}

type fixture struct {
	repo     *repository.Repository
	store    *repotest.Store
	notifier *recordingNotifier
	issuer   *token.Issuer
	svc      *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo, store := repotest.NewRepository()
	notifier := &recordingNotifier{}
	issuer := token.NewIssuer("test-secret", "yamdb-test", time.Hour, 24*time.Hour)

	return &fixture{
		repo:     repo,
		store:    store,
		notifier: notifier,
		issuer:   issuer,
		svc:      NewService(repo, notifier, issuer, zap.NewNop()),
	}
}

func (f *fixture) addUser(t *testing.T, username string, role entity.UserRole) utils.Actor {
	t.Helper()

	now := time.Now()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, f.repo.User.Create(context.Background(), user))

	return utils.Actor{UserID: user.ID, Username: username, Role: string(role)}
}

func (f *fixture) addCategory(t *testing.T, name, slug string) *entity.Category {
	t.Helper()

	c := &entity.Category{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}, Name: name, Slug: slug}
	require.NoError(t, f.repo.Category.Create(context.Background(), c))
	return c
}

func (f *fixture) addGenre(t *testing.T, name, slug string) *entity.Genre {
	t.Helper()

	g := &entity.Genre{BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()}, Name: name, Slug: slug}
	require.NoError(t, f.repo.Genre.Create(context.Background(), g))
	return g
}

func (f *fixture) addTitle(t *testing.T, name string) string {
	t.Helper()

	now := time.Now()
	title := &entity.Title{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: name,
		Year: 2000,
	}
	require.NoError(t, f.repo.Title.Create(context.Background(), title, nil))
	return title.ID.String()
}

func zapNop() *zap.Logger {
	return zap.NewNop()
}
