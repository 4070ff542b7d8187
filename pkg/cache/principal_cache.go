package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pmcontext "github.com/platform-mesh/backend-resources/pkg/context"
)

const defaultSize = 1024

type entry struct {
	principal pmcontext.Principal
	expiresAt time.Time
}

// PrincipalCache remembers the principal of already verified bearer tokens.
// An entry never outlives the token it was derived from.
type PrincipalCache struct {
	cache *expirable.LRU[string, entry]
	ttl   time.Duration
	now   func() time.Time
}

func NewPrincipalCache(ttl time.Duration) *PrincipalCache {
	return &PrincipalCache{
		cache: expirable.NewLRU[string, entry](defaultSize, nil, ttl),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get returns the cached principal for rawToken.
func (c *PrincipalCache) Get(rawToken string) (pmcontext.Principal, bool) {
	key := buildKey(rawToken)
	e, ok := c.cache.Get(key)
	if !ok {
		return pmcontext.Principal{}, false
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.cache.Remove(key)
		return pmcontext.Principal{}, false
	}
	return e.principal, true
}

// Set stores p for rawToken. Tokens already expired at expiresAt are not stored,
// a zero expiresAt leaves the lifetime to the cache TTL.
func (c *PrincipalCache) Set(rawToken string, p pmcontext.Principal, expiresAt time.Time) {
	if !expiresAt.IsZero() && !c.now().Before(expiresAt) {
		return
	}
	c.cache.Add(buildKey(rawToken), entry{principal: p, expiresAt: expiresAt})
}

// Size returns the number of cached principals
func (c *PrincipalCache) Size() int {
	return c.cache.Len()
}

// Clear removes all cached principals
func (c *PrincipalCache) Clear() {
	c.cache.Purge()
}

// buildKey hashes the token so raw credentials are not kept in memory
func buildKey(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}
