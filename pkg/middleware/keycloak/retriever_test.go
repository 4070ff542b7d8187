package keycloak

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealmRetriever_RealmFromIssuer_ValidIssuers(t *testing.T) {
	retriever := NewRealmRetriever()

	testCases := []struct {
		name          string
		issuer        string
		expectedRealm string
	}{
		{name: "Basic Keycloak URL", issuer: "https://auth.example.com/realms/itm", expectedRealm: "itm"},
		{name: "Trailing slash", issuer: "https://auth.example.com/realms/itm/", expectedRealm: "itm"},
		{name: "With port", issuer: "http://localhost:8180/realms/itm", expectedRealm: "itm"},
		{name: "Legacy auth context path", issuer: "https://example.com/auth/realms/master", expectedRealm: "master"},
		{name: "Nested context path", issuer: "https://company.com/services/auth/keycloak/realms/corp-realm", expectedRealm: "corp-realm"},
		{name: "Realm with dots", issuer: "https://keycloak.company.com/realms/realm.with.dots", expectedRealm: "realm.with.dots"},
		{name: "Mixed case realm", issuer: "https://auth.example.com/realms/MyRealmName", expectedRealm: "MyRealmName"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			realm, err := retriever.RealmFromIssuer(tc.issuer)

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedRealm, realm)
		})
	}
}

func TestRealmRetriever_RealmFromIssuer_InvalidIssuers(t *testing.T) {
	retriever := NewRealmRetriever()

	testCases := []struct {
		name   string
		issuer string
	}{
		{name: "Empty string", issuer: ""},
		{name: "Missing realms path", issuer: "https://auth.example.com/auth"},
		{name: "Not a url", issuer: "not-a-url"},
		{name: "Singular realm segment", issuer: "https://auth.example.com/realm/test"},
		{name: "Only the scheme", issuer: "https://"},
		{name: "Upper case REALMS", issuer: "https://auth.example.com/REALMS/test"},
		{name: "Path after realm", issuer: "https://auth.example.com/realms/test/protocol/openid-connect"},
		{name: "Empty realm", issuer: "https://auth.example.com/realms/"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			realm, err := retriever.RealmFromIssuer(tc.issuer)

			assert.Error(t, err)
			assert.Empty(t, realm)
			assert.Contains(t, err.Error(), "token issuer is not valid")
		})
	}
}

func TestRealmRetriever_IssuedBy(t *testing.T) {
	retriever := NewRealmRetriever()

	assert.True(t, retriever.IssuedBy("https://auth.example.com/realms/itm", "itm"))
	assert.False(t, retriever.IssuedBy("https://auth.example.com/realms/master", "itm"))
	assert.False(t, retriever.IssuedBy("https://auth.example.com/realms/ITM", "itm"))
	assert.False(t, retriever.IssuedBy("garbage", "itm"))
}
