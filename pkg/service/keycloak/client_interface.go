package keycloak

import (
	"context"

	"github.com/Nerzal/gocloak/v13"
)

// GoCloakClient defines the subset of gocloak client methods we use
type GoCloakClient interface {
	CreateUser(ctx context.Context, token, realm string, user gocloak.User) (string, error)
	GetUserByID(ctx context.Context, accessToken, realm, userID string) (*gocloak.User, error)
	GetRoleMappingByUserID(ctx context.Context, token, realm, userID string) (*gocloak.MappingsRepresentation, error)
	GetUserGroups(ctx context.Context, token, realm, userID string, params gocloak.GetGroupsParams) ([]*gocloak.Group, error)
}

// Ensure the gocloak client implements our interface
var _ GoCloakClient = (*gocloak.GoCloak)(nil)
