package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Nerzal/gocloak/v13"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/platform-mesh/backend-resources/pkg/api"
	serrors "github.com/platform-mesh/backend-resources/pkg/service/errors"
	"github.com/platform-mesh/backend-resources/pkg/service/keycloak"
	"github.com/platform-mesh/backend-resources/pkg/service/mocks"
)

const testRealm = "itm"

func setupService(t *testing.T) (*UserService, *mocks.IdentityProvider) {
	idp := mocks.NewIdentityProvider(t)
	return New(testRealm, idp), idp
}

func testUserRequest() api.UserRequest {
	return api.UserRequest{
		Username:  "thor",
		Email:     "thor@gmail.com",
		Password:  "root",
		FirstName: "ken",
		LastName:  "floor",
	}
}

func requireBackendError(t *testing.T, err error) *serrors.BackendResourcesError {
	t.Helper()
	var berr *serrors.BackendResourcesError
	require.True(t, pkgerrors.As(err, &berr), "expected BackendResourcesError, got %v", err)
	return berr
}

func Test_CreateUser_Success(t *testing.T) {
	service, idp := setupService(t)
	ctx := context.Background()

	var created gocloak.User
	idp.EXPECT().CreateUser(mock.Anything, testRealm, mock.Anything).
		Run(func(ctx context.Context, realm string, user gocloak.User) { created = user }).
		Return(&keycloak.CreateUserResponse{StatusCode: http.StatusCreated, UserID: uuid.NewString()}, nil).
		Once()

	err := service.CreateUser(ctx, testUserRequest())

	assert.NoError(t, err)
	assert.Equal(t, "thor", gocloak.PString(created.Username))
	assert.Equal(t, "thor@gmail.com", gocloak.PString(created.Email))
	assert.Equal(t, "ken", gocloak.PString(created.FirstName))
	assert.Equal(t, "floor", gocloak.PString(created.LastName))
	assert.True(t, gocloak.PBool(created.Enabled))
	assert.False(t, gocloak.PBool(created.EmailVerified))
	require.NotNil(t, created.Credentials)
	require.Len(t, *created.Credentials, 1)
	credential := (*created.Credentials)[0]
	assert.Equal(t, "password", gocloak.PString(credential.Type))
	assert.Equal(t, "root", gocloak.PString(credential.Value))
	require.NotNil(t, credential.Temporary)
	assert.False(t, *credential.Temporary)
}

func Test_CreateUser_ProviderStatus(t *testing.T) {
	testCases := []struct {
		name           string
		providerStatus int
		expectedStatus int
	}{
		{name: "server error", providerStatus: http.StatusInternalServerError, expectedStatus: http.StatusInternalServerError},
		{name: "conflict", providerStatus: http.StatusConflict, expectedStatus: http.StatusConflict},
		{name: "forbidden", providerStatus: http.StatusForbidden, expectedStatus: http.StatusForbidden},
		{name: "redirect", providerStatus: http.StatusFound, expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, idp := setupService(t)

			idp.EXPECT().CreateUser(mock.Anything, testRealm, mock.Anything).
				Return(&keycloak.CreateUserResponse{StatusCode: tc.providerStatus}, nil)

			err := service.CreateUser(context.Background(), testUserRequest())

			berr := requireBackendError(t, err)
			assert.Equal(t, tc.expectedStatus, berr.Status)
			assert.Equal(t, serrors.Message, berr.Message)
			assert.Contains(t, berr.Error(), fmt.Sprintf("status %d", tc.providerStatus))
		})
	}
}

func Test_CreateUser_AnySuccessStatus(t *testing.T) {
	service, idp := setupService(t)

	idp.EXPECT().CreateUser(mock.Anything, testRealm, mock.Anything).
		Return(&keycloak.CreateUserResponse{StatusCode: http.StatusNoContent}, nil)

	assert.NoError(t, service.CreateUser(context.Background(), testUserRequest()))
}

func Test_CreateUser_TransportError(t *testing.T) {
	service, idp := setupService(t)

	idp.EXPECT().CreateUser(mock.Anything, testRealm, mock.Anything).
		Return(nil, errors.New("connection refused"))

	err := service.CreateUser(context.Background(), testUserRequest())

	berr := requireBackendError(t, err)
	assert.Equal(t, http.StatusInternalServerError, berr.Status)
	assert.Contains(t, berr.Error(), "connection refused")
}

func Test_CreateUser_NilResponse(t *testing.T) {
	service, idp := setupService(t)

	idp.EXPECT().CreateUser(mock.Anything, testRealm, mock.Anything).Return(nil, nil)

	err := service.CreateUser(context.Background(), testUserRequest())

	berr := requireBackendError(t, err)
	assert.Equal(t, http.StatusInternalServerError, berr.Status)
}

func Test_GetUserByID_Success(t *testing.T) {
	service, idp := setupService(t)
	id := uuid.NewString()

	idp.EXPECT().GetUser(mock.Anything, testRealm, id).Return(&gocloak.User{
		ID:        gocloak.StringP(id),
		Username:  gocloak.StringP("thor"),
		Email:     gocloak.StringP("thor@gmail.com"),
		FirstName: gocloak.StringP("ken"),
		LastName:  gocloak.StringP("floor"),
	}, nil)
	idp.EXPECT().GetRoles(mock.Anything, testRealm, id).Return([]string{"MODERATOR", "default-roles-itm", "MODERATOR"}, nil)
	idp.EXPECT().GetGroups(mock.Anything, testRealm, id).Return([]string{"staff"}, nil)

	resp, err := service.GetUserByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, &api.UserResponse{
		ID:        id,
		Username:  "thor",
		Email:     "thor@gmail.com",
		FirstName: "ken",
		LastName:  "floor",
		Roles:     []string{"MODERATOR", "default-roles-itm"},
		Groups:    []string{"staff"},
	}, resp)
}

func Test_GetUserByID_SparseRepresentation(t *testing.T) {
	service, idp := setupService(t)

	idp.EXPECT().GetUser(mock.Anything, testRealm, "id").Return(&gocloak.User{ID: gocloak.StringP("id")}, nil)
	idp.EXPECT().GetRoles(mock.Anything, testRealm, "id").Return(nil, nil)
	idp.EXPECT().GetGroups(mock.Anything, testRealm, "id").Return(nil, nil)

	resp, err := service.GetUserByID(context.Background(), "id")

	require.NoError(t, err)
	assert.Equal(t, "id", resp.ID)
	assert.Empty(t, resp.Username)
	assert.Equal(t, []string{}, resp.Roles)
	assert.Equal(t, []string{}, resp.Groups)
}

func Test_GetUserByID_GetUserFails(t *testing.T) {
	service, idp := setupService(t)

	idp.EXPECT().GetUser(mock.Anything, testRealm, "").Return(nil, errors.New("404 Not Found"))

	resp, err := service.GetUserByID(context.Background(), "")

	assert.Nil(t, resp)
	berr := requireBackendError(t, err)
	assert.Equal(t, http.StatusInternalServerError, berr.Status)
}

func Test_GetUserByID_NilUser(t *testing.T) {
	service, idp := setupService(t)

	idp.EXPECT().GetUser(mock.Anything, testRealm, "id").Return(nil, nil)

	resp, err := service.GetUserByID(context.Background(), "id")

	assert.Nil(t, resp)
	berr := requireBackendError(t, err)
	assert.Equal(t, http.StatusInternalServerError, berr.Status)
}

func Test_GetUserByID_GetRolesFails(t *testing.T) {
	service, idp := setupService(t)

	idp.EXPECT().GetUser(mock.Anything, testRealm, "id").Return(&gocloak.User{ID: gocloak.StringP("id")}, nil)
	idp.EXPECT().GetRoles(mock.Anything, testRealm, "id").Return(nil, errors.New("role mappings unavailable"))

	resp, err := service.GetUserByID(context.Background(), "id")

	assert.Nil(t, resp)
	berr := requireBackendError(t, err)
	assert.Equal(t, http.StatusInternalServerError, berr.Status)
	assert.Contains(t, berr.Error(), "role mappings unavailable")
}

func Test_GetUserByID_GetGroupsFails(t *testing.T) {
	service, idp := setupService(t)

	idp.EXPECT().GetUser(mock.Anything, testRealm, "id").Return(&gocloak.User{ID: gocloak.StringP("id")}, nil)
	idp.EXPECT().GetRoles(mock.Anything, testRealm, "id").Return([]string{}, nil)
	idp.EXPECT().GetGroups(mock.Anything, testRealm, "id").Return(nil, errors.New("groups unavailable"))

	resp, err := service.GetUserByID(context.Background(), "id")

	assert.Nil(t, resp)
	berr := requireBackendError(t, err)
	assert.Equal(t, http.StatusInternalServerError, berr.Status)
}
