package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"trivia-api/internal/config"
	"trivia-api/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWKSCache_UnknownKidFetchesAreBounded(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var hits int32
	ts := newJWKSServer(t, "key-1", &privateKey.PublicKey, &hits)
	cfg := config.AuthConfig{
		Algorithm:      "RS256",
		Domain:         strings.TrimPrefix(ts.URL, "https://"),
		Audience:       testAudience,
		JWKSTTL:        time.Hour,
		JWKSMinRefresh: time.Hour,
	}
	svc, err := NewAuthService(cfg, ts.Client())
	require.NoError(t, err)

	forged := func(i int) string {
		c := validClaims()
		c.Issuer = cfg.Issuer()
		token := jwt.NewWithClaims(jwt.SigningMethodRS256, c)
		token.Header["kid"] = fmt.Sprintf("forged-%d", i)
		s, err := token.SignedString(privateKey)
		require.NoError(t, err)
		return s
	}
	tokens := make([]string, 100)
	for i := range tokens {
		tokens[i] = forged(i)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(tokens))
	for i, token := range tokens {
		wg.Add(1)
		go func(i int, token string) {
			defer wg.Done()
			_, errs[i] = svc.ValidateJWT(context.Background(), token)
		}(i, token)
	}
	wg.Wait()

	for _, err := range errs {
		requireAuthError(t, err, domain.CodeInvalidHeader, http.StatusUnauthorized)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	for _, token := range tokens[:10] {
		_, err := svc.ValidateJWT(context.Background(), token)
		requireAuthError(t, err, domain.CodeInvalidHeader, http.StatusUnauthorized)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestJWKSCache_RefetchesAfterMinRefresh(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var hits int32
	ts := newJWKSServer(t, "key-1", &privateKey.PublicKey, &hits)
	cache := newJWKSCache(ts.URL+"/.well-known/jwks.json", time.Hour, 50*time.Millisecond, ts.Client())
	ctx := context.Background()

	_, err = cache.key(ctx, "rotated")
	assert.ErrorIs(t, err, errUnknownKeyID)
	_, err = cache.key(ctx, "rotated")
	assert.ErrorIs(t, err, errUnknownKeyID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	time.Sleep(60 * time.Millisecond)
	_, err = cache.key(ctx, "rotated")
	assert.ErrorIs(t, err, errUnknownKeyID)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))

	key, err := cache.key(ctx, "key-1")
	require.NoError(t, err)
	assert.Equal(t, privateKey.PublicKey.N, key.N)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestJWKSCache_StaleKeyServedWhileThrottled(t *testing.T) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	var hits int32
	ts := newJWKSServer(t, "key-1", &privateKey.PublicKey, &hits)
	cache := newJWKSCache(ts.URL+"/.well-known/jwks.json", time.Nanosecond, time.Hour, ts.Client())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		key, err := cache.key(ctx, "key-1")
		require.NoError(t, err)
		assert.Equal(t, privateKey.PublicKey.E, key.E)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
