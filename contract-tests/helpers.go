package contract_tests

import (
	"github.com/go-jose/go-jose/v4"
	"github.com/go-jose/go-jose/v4/jwt"
)

const (
	keycloakBaseURL = "http://localhost:8180"
	realm           = "itm"
	moderatorRole   = "MODERATOR"
	adminToken      = "admin-access-token" // nolint: gosec

	usersPath = "/api/users"
	helloPath = "/api/users/hello"

	validUserBody = `{"username":"thor","email":"thor@gmail.com","password":"root","firstName":"ken","lastName":"floor"}`
	blankUserBody = `{"username":"","email":"thor@gmail.com","password":"root","firstName":"ken","lastName":"floor"}`
)

// bearer signs a realm access token for username carrying the given realm roles.
func (s *CommonTestSuite) bearer(username string, roles ...string) string {
	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.RS256, Key: s.signingKey},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		s.T().Fatal(err)
	}

	claims := map[string]interface{}{
		"iss":                keycloakBaseURL + "/realms/" + realm,
		"sub":                username + "-id",
		"preferred_username": username,
		"realm_access":       map[string]interface{}{"roles": roles},
	}

	raw, err := jwt.Signed(signer).Claims(claims).Serialize()
	if err != nil {
		s.T().Fatal(err)
	}
	return "Bearer " + raw
}
