package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// Actor is the authenticated caller of a request.
type Actor struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

func (a Actor) IsAdmin() bool {
	return a.Role == "admin"
}

func (a Actor) IsModerator() bool {
	return a.Role == "moderator"
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// GetActorFromContext returns the caller set by the auth middleware.
func GetActorFromContext(ctx context.Context) (Actor, bool) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return Actor{}, false
	}
	username, _ := ctx.Value(UsernameKey).(string)
	role, _ := GetRoleFromContext(ctx)

	return Actor{UserID: userID, Username: username, Role: role}, true
}

func SetUserContext(ctx context.Context, actor Actor) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, actor.UserID)
	ctx = context.WithValue(ctx, UsernameKey, actor.Username)
	ctx = context.WithValue(ctx, RoleKey, actor.Role)
	return ctx
}
