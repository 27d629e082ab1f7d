package middleware

import (
	"context"

	"github.com/ecosetu/ewallet_backend/internal/core/domain"
)

const (
	userIDCtxKey    = contextKey("userID")
	actorRoleCtxKey = contextKey("actorRole")
)

// GetUserIDFromCtx retrieves the authenticated user ID from the context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(string)
	return userID, ok
}

// GetActorRoleFromCtx retrieves the authenticated caller's role from the context.
func GetActorRoleFromCtx(ctx context.Context) (domain.ActorRole, bool) {
	role, ok := ctx.Value(actorRoleCtxKey).(domain.ActorRole)
	return role, ok
}
