package utils

import "context"

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "role"
)

// RoleAdmin marks store staff allowed to manage the catalog and orders.
const RoleAdmin = "ADMIN"

// SetUserContext sets user info into context (called by middleware)
func SetUserContext(ctx context.Context, id string, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, id)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return ctx
}

// GetUserIDFromContext retrieves userID safely
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

func GetUserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(UserRoleKey).(string)
	return role
}

func IsStaff(ctx context.Context) bool {
	_, ok := GetUserIDFromContext(ctx)
	return ok && GetUserRoleFromContext(ctx) == RoleAdmin
}
