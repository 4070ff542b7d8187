package keycloak

import (
	"regexp"

	"github.com/platform-mesh/golang-commons/errors"
)

var issuerPattern = regexp.MustCompile(`^https?://[^/]+(?:/.*)?/realms/([^/]+)/?$`)

// RealmRetriever derives the Keycloak realm from a token issuer.
type RealmRetriever struct{}

func NewRealmRetriever() *RealmRetriever {
	return &RealmRetriever{}
}

func (k *RealmRetriever) RealmFromIssuer(issuer string) (string, error) {
	match := issuerPattern.FindStringSubmatch(issuer)
	if match == nil {
		return "", errors.New("token issuer is not valid")
	}

	return match[1], nil
}

// IssuedBy reports whether issuer belongs to realm. Realm names are compared case-sensitively.
func (k *RealmRetriever) IssuedBy(issuer string, realm string) bool {
	got, err := k.RealmFromIssuer(issuer)
	if err != nil {
		return false
	}
	return got == realm
}
