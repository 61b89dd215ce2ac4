package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenConfig(t *testing.T) {
	cc, err := tokenConfig(config.AuthConfig{
		Domain:       "tenant.auth0.com",
		Audience:     "coffeeshop",
		ClientID:     "id",
		ClientSecret: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://tenant.auth0.com/oauth/token", cc.TokenURL)
	assert.Equal(t, "coffeeshop", cc.EndpointParams.Get("audience"))

	_, err = tokenConfig(config.AuthConfig{Domain: "tenant.auth0.com"})
	assert.Error(t, err)
}

func TestTokenConfig_FetchesToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "coffeeshop", r.PostForm.Get("audience"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc.def.ghi","token_type":"Bearer","expires_in":3600}`))
	}))
	defer ts.Close()

	cc, err := tokenConfig(config.AuthConfig{Domain: "unused", Audience: "coffeeshop", ClientID: "id", ClientSecret: "secret"})
	require.NoError(t, err)
	cc.TokenURL = ts.URL

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, ts.Client())
	token, err := cc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token.AccessToken)
}
