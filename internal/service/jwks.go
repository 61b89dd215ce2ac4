package service

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"trivia-api/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const defaultJWKSMinRefresh = time.Minute

var errUnknownKeyID = errors.New("no signing key matches the token kid")

type jsonWebKey struct {
	Kty string   `json:"kty"`
	Kid string   `json:"kid"`
	Use string   `json:"use"`
	N   string   `json:"n"`
	E   string   `json:"e"`
	X5c []string `json:"x5c"`
}

type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

// jwksCache holds the issuer's RSA signing keys by kid and refetches them
// after ttl, or sooner when a token names an unknown kid. Refetches are
// shared between concurrent callers and happen at most once per minRefresh.
type jwksCache struct {
	url        string
	ttl        time.Duration
	minRefresh time.Duration
	client     *http.Client
	group      singleflight.Group

	mu          sync.RWMutex
	keys        map[string]*rsa.PublicKey
	fetchedAt   time.Time
	lastAttempt time.Time
}

func newJWKSCache(url string, ttl, minRefresh time.Duration, client *http.Client) *jwksCache {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if minRefresh <= 0 {
		minRefresh = defaultJWKSMinRefresh
	}
	return &jwksCache{url: url, ttl: ttl, minRefresh: minRefresh, client: client}
}

func (c *jwksCache) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	c.mu.RLock()
	key, ok := c.keys[kid]
	fresh := time.Since(c.fetchedAt) < c.ttl
	throttled := time.Since(c.lastAttempt) < c.minRefresh
	c.mu.RUnlock()
	if ok && (fresh || throttled) {
		return key, nil
	}
	if throttled {
		return nil, errUnknownKeyID
	}

	_, err, _ := c.group.Do("jwks", func() (interface{}, error) {
		c.mu.Lock()
		if time.Since(c.lastAttempt) < c.minRefresh {
			c.mu.Unlock()
			return nil, nil
		}
		c.lastAttempt = time.Now()
		c.mu.Unlock()
		return nil, c.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		if ok {
			logger.Get().Warn("JWKS refresh failed, using cached key", zap.String("kid", kid), zap.Error(err))
			return key, nil
		}
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if key, ok := c.keys[kid]; ok {
		return key, nil
	}
	return nil, errUnknownKeyID
}

func (c *jwksCache) refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return fmt.Errorf("failed to build JWKS request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch JWKS: status %d", resp.StatusCode)
	}

	var set jsonWebKeySet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, jwk := range set.Keys {
		if jwk.Kty != "RSA" || (jwk.Use != "" && jwk.Use != "sig") {
			continue
		}
		pub, err := jwk.publicKey()
		if err != nil {
			logger.Get().Warn("Skipping unusable JWKS key", zap.String("kid", jwk.Kid), zap.Error(err))
			continue
		}
		keys[jwk.Kid] = pub
	}

	c.mu.Lock()
	c.keys = keys
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	logger.Get().Debug("JWKS refreshed", zap.String("url", c.url), zap.Int("keys", len(keys)))
	return nil
}

// publicKey prefers the x5c certificate and falls back to the modulus and exponent.
func (k jsonWebKey) publicKey() (*rsa.PublicKey, error) {
	if len(k.X5c) > 0 {
		der, err := base64.StdEncoding.DecodeString(k.X5c[0])
		if err == nil {
			certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
			if pub, err := jwt.ParseRSAPublicKeyFromPEM(certPEM); err == nil {
				return pub, nil
			}
		}
	}

	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("invalid modulus: %w", err)
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("invalid exponent: %w", err)
	}
	if len(n) == 0 || len(e) == 0 {
		return nil, errors.New("empty modulus or exponent")
	}
	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(new(big.Int).SetBytes(e).Int64()),
	}, nil
}
