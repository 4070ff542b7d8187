package contract_tests

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"

	"github.com/go-chi/chi/v5"
	pmconfig "github.com/platform-mesh/golang-commons/config"
	commonsLogger "github.com/platform-mesh/golang-commons/logger"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"

	"github.com/platform-mesh/backend-resources/pkg/api"
	"github.com/platform-mesh/backend-resources/pkg/config"
	"github.com/platform-mesh/backend-resources/pkg/handler"
	"github.com/platform-mesh/backend-resources/pkg/middleware/auth"
	"github.com/platform-mesh/backend-resources/pkg/router"
	"github.com/platform-mesh/backend-resources/pkg/service"
	"github.com/platform-mesh/backend-resources/pkg/service/keycloak"
	"github.com/platform-mesh/backend-resources/pkg/service/keycloak/mocks"
)

type CommonTestSuite struct {
	suite.Suite
	serviceCfg config.ServiceConfig
	logger     *commonsLogger.Logger
	signingKey *rsa.PrivateKey
}

func (s *CommonTestSuite) SetupSuite() {
	s.SetupLogger()
	s.setupConfig()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		s.T().Fatal(err)
	}
	s.signingKey = key
}

type Middleware = func(http.Handler) http.Handler

// ApiTest returns an apitest bound to the fully wired router. Only the Keycloak admin client is mocked.
func (s *CommonTestSuite) ApiTest(gocloakMock *mocks.GoCloakClient) *apitest.APITest {
	r := s.getRouter(gocloakMock)

	return apitest.New().
		Handler(r)
}

func (s *CommonTestSuite) setupConfig() {
	s.serviceCfg = config.ServiceConfig{
		Port: 8080,
		Keycloak: config.KeycloakConfig{
			BaseURL:    keycloakBaseURL,
			Realm:      realm,
			AdminRealm: "master",
			ClientID:   "admin-cli",
		},
		Auth: config.AuthConfig{
			ModeratorRole: moderatorRole,
			ClientID:      "backend-resources",
		},
	}
}

func (s *CommonTestSuite) SetupLogger() {
	logConfig := commonsLogger.DefaultConfig()
	logConfig.Level = "error"
	logger, err := commonsLogger.New(logConfig)
	if err != nil {
		s.Error(err)
	}
	s.logger = logger
}

func (s *CommonTestSuite) getRouter(gocloakMock *mocks.GoCloakClient) *chi.Mux {
	idp := keycloak.NewService(gocloakMock, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: adminToken}))
	svc := service.New(s.serviceCfg.Keycloak.Realm, idp)

	validator, err := api.NewValidator()
	if err != nil {
		s.T().Fatal(err)
	}

	userHandler := handler.NewUserHandler(svc, validator)
	authMw := auth.New(auth.NewTrustedParser(), s.serviceCfg, handler.WriteError)

	commonCfg := &pmconfig.CommonServiceConfig{IsLocal: false}
	return router.CreateRouter(commonCfg, &s.serviceCfg, userHandler, authMw, s.logger, []Middleware{})
}
