package access

import (
	"context"

	"blogbox/app/models"
)

// Identity is the acting identity resolved for one request. The zero
// value is the anonymous visitor.
type Identity struct {
	UserID int
	Name   string
}

// Anonymous is the identity of an unauthenticated visitor.
var Anonymous = Identity{}

// Authenticated reports whether the identity belongs to a logged-in user.
func (id Identity) Authenticated() bool {
	return id.UserID != 0
}

// IsAdmin reports whether the identity is the single designated admin
// (the first-ever registered account).
func (id Identity) IsAdmin() bool {
	return id.UserID == models.AdminUserID
}

type contextKey struct{}

// WithIdentity returns a context carrying the given identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity carried by the context, or
// Anonymous when none was resolved.
func FromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(contextKey{}).(Identity); ok {
		return id
	}
	return Anonymous
}
