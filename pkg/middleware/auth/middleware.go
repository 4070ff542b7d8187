package auth

import (
	"net/http"
	"strings"

	"github.com/go-http-utils/headers"
	"github.com/platform-mesh/golang-commons/errors"
	"github.com/platform-mesh/golang-commons/logger"

	"github.com/platform-mesh/backend-resources/pkg/cache"
	"github.com/platform-mesh/backend-resources/pkg/config"
	pmcontext "github.com/platform-mesh/backend-resources/pkg/context"
	"github.com/platform-mesh/backend-resources/pkg/middleware/keycloak"
)

const tokenAuthPrefix = "BEARER"

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

// ErrorWriter renders a rejected request
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

type Middleware struct {
	verifier   Verifier
	retriever  *keycloak.RealmRetriever
	realm      string
	clientID   string
	writeError ErrorWriter
	principals *cache.PrincipalCache
}

func New(verifier Verifier, cfg config.ServiceConfig, writeError ErrorWriter) *Middleware {
	m := &Middleware{
		verifier:   verifier,
		retriever:  keycloak.NewRealmRetriever(),
		realm:      cfg.Keycloak.Realm,
		clientID:   cfg.Auth.ClientID,
		writeError: writeError,
	}
	if cfg.Auth.Cache.Enabled && cfg.Auth.Cache.TTL > 0 {
		m.principals = cache.NewPrincipalCache(cfg.Auth.Cache.TTL)
	}
	return m
}

// Authenticate resolves the bearer token into a Principal and stores it in the request context.
// Requests without an acceptable token are rejected with ErrUnauthenticated.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.LoadLoggerFromContext(ctx)

			principal, err := m.principalFromRequest(r)
			if err != nil {
				log.Debug().Err(err).Msg("rejecting unauthenticated request")
				m.writeError(w, r, ErrUnauthenticated)
				return
			}

			log.Trace().Str("username", principal.Username).Msg("request authenticated")
			next.ServeHTTP(w, r.WithContext(pmcontext.SetPrincipal(ctx, principal)))
		})
	}
}

// RequireRole rejects authenticated callers lacking role with ErrForbidden.
// It must run after Authenticate.
func (m *Middleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := pmcontext.GetPrincipal(r.Context())
			if err != nil {
				m.writeError(w, r, ErrUnauthenticated)
				return
			}

			if !principal.HasRole(role) {
				logger.LoadLoggerFromContext(r.Context()).Debug().
					Str("username", principal.Username).
					Str("role", role).
					Msg("caller lacks required role")
				m.writeError(w, r, ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) principalFromRequest(r *http.Request) (pmcontext.Principal, error) {
	rawToken, err := bearerToken(r)
	if err != nil {
		return pmcontext.Principal{}, err
	}

	if m.principals != nil {
		if principal, ok := m.principals.Get(rawToken); ok {
			return principal, nil
		}
	}

	token, err := m.verifier.Verify(r.Context(), rawToken)
	if err != nil {
		return pmcontext.Principal{}, err
	}

	var c claims
	if err := token.Claims(&c); err != nil {
		return pmcontext.Principal{}, errors.Wrap(err, "failed to decode token claims")
	}

	if !m.retriever.IssuedBy(c.Issuer, m.realm) {
		return pmcontext.Principal{}, errors.New("token issuer %q does not belong to realm %s", c.Issuer, m.realm)
	}

	principal := c.principal(m.clientID)
	if principal.Username == "" {
		return pmcontext.Principal{}, errors.New("token carries no subject")
	}

	if m.principals != nil {
		m.principals.Set(rawToken, principal, c.expiresAt())
	}
	return principal, nil
}

func bearerToken(r *http.Request) (string, error) {
	auth := strings.Split(r.Header.Get(headers.Authorization), " ")
	if len(auth) != 2 || strings.ToUpper(auth[0]) != tokenAuthPrefix || auth[1] == "" {
		return "", errors.New("missing bearer token")
	}
	return auth[1], nil
}
