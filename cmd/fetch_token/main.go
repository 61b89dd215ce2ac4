// Command fetch_token prints an access token for the configured API audience
// using the OAuth2 client credentials grant. The token's permissions come from
// the client's grants at the authorization server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"trivia-api/internal/config"

	"golang.org/x/oauth2/clientcredentials"
)

// tokenConfig builds the client credentials request for auth.
func tokenConfig(auth config.AuthConfig) (*clientcredentials.Config, error) {
	if auth.Domain == "" || auth.ClientID == "" || auth.ClientSecret == "" {
		return nil, fmt.Errorf("auth.domain, auth.client_id and auth.client_secret are required")
	}
	return &clientcredentials.Config{
		ClientID:       auth.ClientID,
		ClientSecret:   auth.ClientSecret,
		TokenURL:       fmt.Sprintf("https://%s/oauth/token", auth.Domain),
		EndpointParams: url.Values{"audience": {auth.Audience}},
	}, nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cc, err := tokenConfig(cfg.Auth)
	if err != nil {
		log.Fatalf("Invalid auth configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	token, err := cc.Token(ctx)
	if err != nil {
		log.Fatalf("Failed to fetch token: %v", err)
	}
	fmt.Fprintln(os.Stdout, token.AccessToken)
}
