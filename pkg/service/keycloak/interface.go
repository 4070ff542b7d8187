package keycloak

import (
	"context"

	"github.com/Nerzal/gocloak/v13"
)

// CreateUserResponse carries the HTTP status Keycloak answered a create-user call with.
type CreateUserResponse struct {
	StatusCode int
	// UserID is only set on success.
	UserID string
}

// IdentityProvider defines the Keycloak admin operations the user service relies on
type IdentityProvider interface {
	// CreateUser creates user in realm. A status answered by Keycloak is reported through
	// the response; an error means Keycloak could not be reached or authenticated against.
	CreateUser(ctx context.Context, realm string, user gocloak.User) (*CreateUserResponse, error)

	// GetUser retrieves the representation of the user with the given id
	GetUser(ctx context.Context, realm, id string) (*gocloak.User, error)

	// GetRoles retrieves the names of the realm and client roles mapped to the user
	GetRoles(ctx context.Context, realm, id string) ([]string, error)

	// GetGroups retrieves the names of the groups the user is a member of
	GetGroups(ctx context.Context, realm, id string) ([]string, error)
}

// Ensure Service implements IdentityProvider interface
var _ IdentityProvider = (*Service)(nil)
