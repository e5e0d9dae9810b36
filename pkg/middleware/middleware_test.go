package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yamdb-api/internal/data/entity"
	"yamdb-api/internal/data/repository/repotest"
	"yamdb-api/pkg/token"
	"yamdb-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupAuth(t *testing.T, role entity.UserRole) (*token.Issuer, *entity.User, http.Handler) {
	t.Helper()

	repo, _ := repotest.NewRepository()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username: "alice",
		Email:    "alice@example.com",
		Role:     role,
	}
	require.NoError(t, repo.User.Create(context.Background(), user))

	issuer := token.NewIssuer("secret", "yamdb-test", time.Hour, time.Hour)
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := utils.GetActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(actor.Username + ":" + actor.Role))
	})

	return issuer, user, Authenticate(issuer, repo.User, zap.NewNop())(echo)
}

func doRequest(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate_AcceptsAccessToken(t *testing.T) {
	issuer, user, h := setupAuth(t, entity.RoleModerator)

	pair, err := issuer.IssuePair(token.Identity{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)

	rec := doRequest(h, "Bearer "+pair.Access)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice:moderator", rec.Body.String())
}

func TestAuthenticate_Rejections(t *testing.T) {
	issuer, user, h := setupAuth(t, entity.RoleUser)

	pair, err := issuer.IssuePair(token.Identity{UserID: user.ID, Username: user.Username})
	require.NoError(t, err)
	ghost, err := issuer.IssuePair(token.Identity{UserID: uuid.New(), Username: "ghost"})
	require.NoError(t, err)

	cases := map[string]string{
		"missing header": "",
		"wrong scheme":   "Token " + pair.Access,
		"empty token":    "Bearer ",
		"garbage":        "Bearer not.a.jwt",
		"refresh token":  "Bearer " + pair.Refresh,
		"deleted user":   "Bearer " + ghost.Access,
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(h, header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAdmin(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	h := Admin(zap.NewNop())(ok)

	serve := func(ctx context.Context) int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil).WithContext(ctx))
		return rec.Code
	}

	assert.Equal(t, http.StatusUnauthorized, serve(context.Background()))
	assert.Equal(t, http.StatusForbidden, serve(utils.SetUserContext(context.Background(),
		utils.Actor{UserID: uuid.New(), Role: "moderator"})))
	assert.Equal(t, http.StatusNoContent, serve(utils.SetUserContext(context.Background(),
		utils.Actor{UserID: uuid.New(), Role: "admin"})))
}

func TestRecover_ReturnsEnvelope(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := Recover(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":false,"message":"Internal server error"}`, rec.Body.String())
	assert.Equal(t, 1, logs.FilterMessage("PANIC recovered").Len())
}

func TestLogger_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(404), entries[0].ContextMap()["status"])
	assert.Equal(t, "x=1", entries[0].ContextMap()["query"])
}
