package auth

import (
	"time"

	pmcontext "github.com/platform-mesh/backend-resources/pkg/context"
)

type access struct {
	Roles []string `json:"roles"`
}

type claims struct {
	Subject           string            `json:"sub"`
	Issuer            string            `json:"iss"`
	Expiry            int64             `json:"exp"`
	PreferredUsername string            `json:"preferred_username"`
	RealmAccess       access            `json:"realm_access"`
	ResourceAccess    map[string]access `json:"resource_access"`
}

func (c claims) principal(clientID string) pmcontext.Principal {
	username := c.PreferredUsername
	if username == "" {
		username = c.Subject
	}

	return pmcontext.Principal{
		Username:    username,
		Subject:     c.Subject,
		Issuer:      c.Issuer,
		RealmRoles:  c.RealmAccess.Roles,
		ClientRoles: c.ResourceAccess[clientID].Roles,
	}
}

func (c claims) expiresAt() time.Time {
	if c.Expiry == 0 {
		return time.Time{}
	}
	return time.Unix(c.Expiry, 0)
}
