package contract_tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/Nerzal/gocloak/v13"
	"github.com/google/uuid"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/platform-mesh/backend-resources/contract-tests/assertions"
	"github.com/platform-mesh/backend-resources/pkg/service/keycloak/mocks"
)

type UsersTestSuite struct {
	CommonTestSuite
}

func TestUsersTestSuite(t *testing.T) {
	suite.Run(t, new(UsersTestSuite))
}

func (suite *UsersTestSuite) TestHello_Moderator() {
	suite.ApiTest(mocks.NewGoCloakClient(suite.T())).
		Get(helloPath).
		Header("Authorization", suite.bearer("user", moderatorRole)).
		Expect(suite.T()).
		Status(http.StatusOK).
		Body("user").
		End()
}

func (suite *UsersTestSuite) TestHello_WithoutRoles() {
	suite.ApiTest(mocks.NewGoCloakClient(suite.T())).
		Get(helloPath).
		Header("Authorization", suite.bearer("loki")).
		Expect(suite.T()).
		Status(http.StatusOK).
		Body("loki").
		End()
}

func (suite *UsersTestSuite) TestHello_Unauthenticated() {
	suite.ApiTest(mocks.NewGoCloakClient(suite.T())).
		Get(helloPath).
		Expect(suite.T()).
		Status(http.StatusUnauthorized).
		End()
}

func (suite *UsersTestSuite) TestCreateUser() {
	gocloakMock := mocks.NewGoCloakClient(suite.T())
	gocloakMock.EXPECT().CreateUser(mock.Anything, adminToken, realm, mock.Anything).
		Run(func(ctx context.Context, token string, realm string, user gocloak.User) {
			suite.Equal("thor", gocloak.PString(user.Username))
			suite.Equal("thor@gmail.com", gocloak.PString(user.Email))
			suite.Equal("ken", gocloak.PString(user.FirstName))
			suite.Equal("floor", gocloak.PString(user.LastName))
			suite.True(gocloak.PBool(user.Enabled))
		}).
		Return(uuid.New().String(), nil).
		Once()

	suite.ApiTest(gocloakMock).
		Post(usersPath).
		Header("Authorization", suite.bearer("user", moderatorRole)).
		JSON(validUserBody).
		Expect(suite.T()).
		Status(http.StatusOK).
		Assert(assertions.EmptyBody()).
		End()
}

func (suite *UsersTestSuite) TestCreateUser_BlankUsername() {
	suite.ApiTest(mocks.NewGoCloakClient(suite.T())).
		Post(usersPath).
		Header("Authorization", suite.bearer("user", moderatorRole)).
		JSON(blankUserBody).
		Expect(suite.T()).
		Status(http.StatusBadRequest).
		Assert(assertions.HasFieldErrors("username")).
		Assert(jsonpath.NotPresent("$.email")).
		End()
}

func (suite *UsersTestSuite) TestCreateUser_ProviderFailure() {
	gocloakMock := mocks.NewGoCloakClient(suite.T())
	gocloakMock.EXPECT().CreateUser(mock.Anything, adminToken, realm, mock.Anything).
		Return("", &gocloak.APIError{Code: http.StatusInternalServerError, Message: "500 Internal Server Error"}).
		Once()

	suite.ApiTest(gocloakMock).
		Post(usersPath).
		Header("Authorization", suite.bearer("user", moderatorRole)).
		JSON(validUserBody).
		Expect(suite.T()).
		Status(http.StatusInternalServerError).
		Body("Backend resources exception occurred").
		End()
}

func (suite *UsersTestSuite) TestCreateUser_DuplicateUsername() {
	gocloakMock := mocks.NewGoCloakClient(suite.T())
	gocloakMock.EXPECT().CreateUser(mock.Anything, adminToken, realm, mock.Anything).
		Return("", &gocloak.APIError{Code: http.StatusConflict, Message: "409 Conflict: User exists with same username"}).
		Once()

	suite.ApiTest(gocloakMock).
		Post(usersPath).
		Header("Authorization", suite.bearer("user", moderatorRole)).
		JSON(validUserBody).
		Expect(suite.T()).
		Status(http.StatusConflict).
		Body("Backend resources exception occurred").
		End()
}

func (suite *UsersTestSuite) TestCreateUser_Forbidden() {
	suite.ApiTest(mocks.NewGoCloakClient(suite.T())).
		Post(usersPath).
		Header("Authorization", suite.bearer("loki", "USER")).
		JSON(validUserBody).
		Expect(suite.T()).
		Status(http.StatusForbidden).
		End()
}

func (suite *UsersTestSuite) TestGetUser() {
	id := uuid.New().String()
	realmRoles := []gocloak.Role{{Name: gocloak.StringP(moderatorRole)}, {Name: gocloak.StringP("offline_access")}}

	gocloakMock := mocks.NewGoCloakClient(suite.T())
	gocloakMock.EXPECT().GetUserByID(mock.Anything, adminToken, realm, id).Return(&gocloak.User{
		ID:        gocloak.StringP(id),
		Username:  gocloak.StringP("thor"),
		Email:     gocloak.StringP("thor@gmail.com"),
		FirstName: gocloak.StringP("ken"),
		LastName:  gocloak.StringP("floor"),
	}, nil).Once()
	gocloakMock.EXPECT().GetRoleMappingByUserID(mock.Anything, adminToken, realm, id).
		Return(&gocloak.MappingsRepresentation{RealmMappings: &realmRoles}, nil).Once()
	gocloakMock.EXPECT().GetUserGroups(mock.Anything, adminToken, realm, id, mock.Anything).
		Return([]*gocloak.Group{{Name: gocloak.StringP("asgard")}}, nil).Once()

	suite.ApiTest(gocloakMock).
		Get(usersPath+"/"+id).
		Header("Authorization", suite.bearer("user", moderatorRole)).
		Expect(suite.T()).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.id", id)).
		Assert(jsonpath.Equal("$.username", "thor")).
		Assert(jsonpath.Equal("$.email", "thor@gmail.com")).
		Assert(jsonpath.Equal("$.roles[0]", moderatorRole)).
		Assert(jsonpath.Equal("$.roles[1]", "offline_access")).
		Assert(jsonpath.Equal("$.groups[0]", "asgard")).
		End()
}

func (suite *UsersTestSuite) TestGetUser_LookupFails() {
	gocloakMock := mocks.NewGoCloakClient(suite.T())
	gocloakMock.EXPECT().GetUserByID(mock.Anything, adminToken, realm, "unknown").
		Return(nil, &gocloak.APIError{Code: http.StatusNotFound, Message: "404 Not Found: User not found"}).
		Once()

	suite.ApiTest(gocloakMock).
		Get(usersPath+"/unknown").
		Header("Authorization", suite.bearer("user", moderatorRole)).
		Expect(suite.T()).
		Status(http.StatusInternalServerError).
		Body("Backend resources exception occurred").
		End()
}

func (suite *UsersTestSuite) TestGetUser_Forbidden() {
	suite.ApiTest(mocks.NewGoCloakClient(suite.T())).
		Get(usersPath+"/"+uuid.New().String()).
		Header("Authorization", suite.bearer("loki", "USER")).
		Expect(suite.T()).
		Status(http.StatusForbidden).
		End()
}
