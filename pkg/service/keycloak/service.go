package keycloak

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Nerzal/gocloak/v13"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/platform-mesh/backend-resources/pkg/config"
	"github.com/platform-mesh/backend-resources/pkg/metrics"
)

const (
	opCreateUser = "create_user"
	opGetUser    = "get_user"
	opGetRoles   = "get_role_mappings"
	opGetGroups  = "get_user_groups"
)

var errUserNotFound = errors.New("keycloak returned no user representation")

type Service struct {
	keycloakClient GoCloakClient
	tokens         oauth2.TokenSource
}

func NewService(client GoCloakClient, tokens oauth2.TokenSource) *Service {
	return &Service{
		keycloakClient: client,
		tokens:         tokens,
	}
}

func (s *Service) CreateUser(ctx context.Context, realm string, user gocloak.User) (*CreateUserResponse, error) {
	token, err := s.accessToken()
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	id, err := s.keycloakClient.CreateUser(ctx, token, realm, user)
	metrics.ObserveKeycloakCall(opCreateUser, begin, err)
	if err != nil {
		var apiErr *gocloak.APIError
		if errors.As(err, &apiErr) && apiErr.Code != 0 {
			log.Warn().Int("status_code", apiErr.Code).Str("realm", realm).Str("username", gocloak.PString(user.Username)).Msg("Keycloak rejected user creation")
			return &CreateUserResponse{StatusCode: apiErr.Code}, nil
		}
		log.Err(err).Str("realm", realm).Msg("Failed to create user")
		return nil, errors.Wrap(err, "failed to create user in keycloak")
	}

	log.Debug().Str("realm", realm).Str("user_id", id).Msg("User created")
	return &CreateUserResponse{StatusCode: http.StatusCreated, UserID: id}, nil
}

func (s *Service) GetUser(ctx context.Context, realm, id string) (*gocloak.User, error) {
	token, err := s.accessToken()
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	user, err := s.keycloakClient.GetUserByID(ctx, token, realm, id)
	metrics.ObserveKeycloakCall(opGetUser, begin, err)
	if err != nil {
		log.Err(err).Str("realm", realm).Str("user_id", id).Msg("Failed to query user")
		return nil, errors.Wrapf(err, "failed to get user %q from keycloak", id)
	}
	if user == nil {
		return nil, errors.Wrapf(errUserNotFound, "user %q", id)
	}

	return user, nil
}

func (s *Service) GetRoles(ctx context.Context, realm, id string) ([]string, error) {
	token, err := s.accessToken()
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	mappings, err := s.keycloakClient.GetRoleMappingByUserID(ctx, token, realm, id)
	metrics.ObserveKeycloakCall(opGetRoles, begin, err)
	if err != nil {
		log.Err(err).Str("realm", realm).Str("user_id", id).Msg("Failed to query role mappings")
		return nil, errors.Wrapf(err, "failed to get role mappings of user %q from keycloak", id)
	}
	if mappings == nil {
		return []string{}, nil
	}

	roles := make([]string, 0)
	if mappings.RealmMappings != nil {
		roles = appendRoleNames(roles, *mappings.RealmMappings)
	}
	for _, client := range mappings.ClientMappings {
		if client == nil || client.Mappings == nil {
			continue
		}
		roles = appendRoleNames(roles, *client.Mappings)
	}

	return roles, nil
}

func (s *Service) GetGroups(ctx context.Context, realm, id string) ([]string, error) {
	token, err := s.accessToken()
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	groups, err := s.keycloakClient.GetUserGroups(ctx, token, realm, id, gocloak.GetGroupsParams{})
	metrics.ObserveKeycloakCall(opGetGroups, begin, err)
	if err != nil {
		log.Err(err).Str("realm", realm).Str("user_id", id).Msg("Failed to query user groups")
		return nil, errors.Wrapf(err, "failed to get groups of user %q from keycloak", id)
	}

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		if g == nil || g.Name == nil {
			continue
		}
		names = append(names, *g.Name)
	}

	return names, nil
}

func (s *Service) accessToken() (string, error) {
	token, err := s.tokens.Token()
	if err != nil {
		log.Err(err).Msg("Failed to obtain keycloak admin token")
		return "", errors.Wrap(err, "failed to obtain keycloak admin token")
	}
	return token.AccessToken, nil
}

func appendRoleNames(names []string, roles []gocloak.Role) []string {
	for _, r := range roles {
		if r.Name == nil {
			continue
		}
		names = append(names, *r.Name)
	}
	return names
}

// New logs in the admin account and returns a Service whose admin token refreshes itself.
// ctx must outlive the Service since token refreshes are bound to it.
func New(ctx context.Context, cfg *config.ServiceConfig) (*Service, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Keycloak.AdminIssuerURL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to discover keycloak admin realm")
	}

	oauthC := oauth2.Config{ClientID: cfg.Keycloak.ClientID, Endpoint: provider.Endpoint()}
	pwd, err := os.ReadFile(cfg.Keycloak.PasswordFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read keycloak admin password")
	}

	token, err := oauthC.PasswordCredentialsToken(ctx, cfg.Keycloak.User, strings.TrimSpace(string(pwd)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to log in keycloak admin")
	}

	client := gocloak.NewClient(cfg.Keycloak.BaseURL)

	return NewService(client, oauthC.TokenSource(ctx, token)), nil
}
