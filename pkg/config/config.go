package config

import "time"

type KeycloakConfig struct {
	BaseURL      string `mapstructure:"keycloak-base-url" default:"http://localhost:8180"`
	Realm        string `mapstructure:"keycloak-realm" default:"itm"`
	AdminRealm   string `mapstructure:"keycloak-admin-realm" default:"master"`
	ClientID     string `mapstructure:"keycloak-client-id" default:"admin-cli"`
	User         string `mapstructure:"keycloak-user" default:"keycloak-admin"`
	PasswordFile string `mapstructure:"keycloak-password-file" default:".secret/keycloak/password"`
}

type TokenCacheConfig struct {
	Enabled bool          `mapstructure:"auth-token-cache-enabled" default:"true"`
	TTL     time.Duration `mapstructure:"auth-token-cache-ttl" default:"1m"`
}

type AuthConfig struct {
	ModeratorRole string `mapstructure:"auth-moderator-role" default:"MODERATOR"`
	// ClientID names the client whose resource_access roles are honoured next to realm roles.
	ClientID     string           `mapstructure:"auth-client-id" default:"backend-resources"`
	VerifyTokens bool             `mapstructure:"auth-verify-tokens" default:"true"`
	Cache        TokenCacheConfig `mapstructure:",squash"`
}

type ServiceConfig struct {
	Port     int            `mapstructure:"port" default:"8080"`
	Keycloak KeycloakConfig `mapstructure:",squash"`
	Auth     AuthConfig     `mapstructure:",squash"`
}

// IssuerURL returns the issuer of tokens minted for the managed realm.
func (c KeycloakConfig) IssuerURL() string {
	return c.BaseURL + "/realms/" + c.Realm
}

// AdminIssuerURL returns the issuer used to log in the admin account.
func (c KeycloakConfig) AdminIssuerURL() string {
	return c.BaseURL + "/realms/" + c.AdminRealm
}
