package auth

import "context"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDesigner Role = "designer"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleDesigner
}

type ContextKey string

const RoleKey ContextKey = "role"

func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, RoleKey, role)
}

func RoleFromContext(ctx context.Context) (Role, bool) {
	role, ok := ctx.Value(RoleKey).(Role)
	return role, ok
}
