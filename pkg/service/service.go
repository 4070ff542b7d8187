package service

import (
	"context"

	"github.com/Nerzal/gocloak/v13"
	"github.com/platform-mesh/golang-commons/errors"

	"github.com/platform-mesh/backend-resources/pkg/api"
	serrors "github.com/platform-mesh/backend-resources/pkg/service/errors"
	"github.com/platform-mesh/backend-resources/pkg/service/keycloak"
)

const credentialTypePassword = "password"

type ServiceInterface interface {
	CreateUser(ctx context.Context, req api.UserRequest) error
	GetUserByID(ctx context.Context, id string) (*api.UserResponse, error)
}

// UserService manages users of a single Keycloak realm.
// Every error it returns is a *serrors.BackendResourcesError.
type UserService struct {
	realm string
	idp   keycloak.IdentityProvider
}

func New(realm string, idp keycloak.IdentityProvider) *UserService {
	return &UserService{
		realm: realm,
		idp:   idp,
	}
}

// CreateUser expects req to be validated already.
func (s *UserService) CreateUser(ctx context.Context, req api.UserRequest) error {
	log := setupLogger(ctx)

	resp, err := s.idp.CreateUser(ctx, s.realm, newKeycloakUser(req))
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("failed to create user")
		return serrors.Wrap(err)
	}
	if resp == nil {
		return serrors.Wrap(errors.New("keycloak returned no response"))
	}

	if !isSuccess(resp.StatusCode) {
		log.Warn().Int("status", resp.StatusCode).Str("username", req.Username).Msg("keycloak refused user creation")
		return serrors.FromProviderStatus(resp.StatusCode)
	}

	log.Info().Str("username", req.Username).Str("userId", resp.UserID).Msg("user created")
	return nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (*api.UserResponse, error) {
	log := setupLogger(ctx).ChildLogger("userId", id)

	user, err := s.idp.GetUser(ctx, s.realm, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")
		return nil, serrors.Wrap(err)
	}
	if user == nil {
		return nil, serrors.Wrap(errors.New("keycloak returned no user representation"))
	}

	roles, err := s.idp.GetRoles(ctx, s.realm, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user roles")
		return nil, serrors.Wrap(err)
	}

	groups, err := s.idp.GetGroups(ctx, s.realm, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user groups")
		return nil, serrors.Wrap(err)
	}

	return &api.UserResponse{
		ID:        gocloak.PString(user.ID),
		Username:  gocloak.PString(user.Username),
		Email:     gocloak.PString(user.Email),
		FirstName: gocloak.PString(user.FirstName),
		LastName:  gocloak.PString(user.LastName),
		Roles:     api.NameSet(roles),
		Groups:    api.NameSet(groups),
	}, nil
}

func newKeycloakUser(req api.UserRequest) gocloak.User {
	credentials := []gocloak.CredentialRepresentation{
		{
			Type:      gocloak.StringP(credentialTypePassword),
			Value:     gocloak.StringP(req.Password),
			Temporary: gocloak.BoolP(false),
		},
	}

	return gocloak.User{
		Username:      gocloak.StringP(req.Username),
		Email:         gocloak.StringP(req.Email),
		FirstName:     gocloak.StringP(req.FirstName),
		LastName:      gocloak.StringP(req.LastName),
		Enabled:       gocloak.BoolP(true),
		EmailVerified: gocloak.BoolP(false),
		Credentials:   &credentials,
	}
}
