package auth

import (
	"context"

	"github.com/google/uuid"
)

type contextKey int

const principalKey contextKey = iota

// Principal is the caller a request was authenticated as
type Principal struct {
	Admin       bool
	CharacterID uuid.UUID
}

// CanActAs reports whether the principal may operate on the character
func (p Principal) CanActAs(characterID uuid.UUID) bool {
	return p.Admin || (p.CharacterID != uuid.Nil && p.CharacterID == characterID)
}

// WithPrincipal stores the authenticated caller in the context
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the authenticated caller, if any
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
