package context

import (
	"context"
	"strings"

	"github.com/platform-mesh/golang-commons/errors"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const (
	// principalContextKey is the key for storing the authenticated caller
	principalContextKey contextKey = "Principal"
)

const rolePrefix = "ROLE_"

// Principal is the authenticated caller attached to a request
type Principal struct {
	Username    string
	Subject     string
	Issuer      string
	RealmRoles  []string
	ClientRoles []string
}

// HasRole reports whether the principal carries role in its realm or client roles.
// A ROLE_ prefix on either side is ignored.
func (p Principal) HasRole(role string) bool {
	role = strings.TrimPrefix(role, rolePrefix)
	for _, r := range p.RealmRoles {
		if strings.TrimPrefix(r, rolePrefix) == role {
			return true
		}
	}
	for _, r := range p.ClientRoles {
		if strings.TrimPrefix(r, rolePrefix) == role {
			return true
		}
	}
	return false
}

// SetPrincipal stores the authenticated caller in the request context
func SetPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// GetPrincipal retrieves the authenticated caller from the request context
func GetPrincipal(ctx context.Context) (Principal, error) {
	val := ctx.Value(principalContextKey)
	if val == nil {
		return Principal{}, errors.New("principal not found in context")
	}

	p, ok := val.(Principal)
	if !ok {
		return Principal{}, errors.New("invalid principal type")
	}

	return p, nil
}
