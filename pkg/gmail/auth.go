package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
)

const (
	// ScopeReadonly is enough for ingestion.
	ScopeReadonly = "https://www.googleapis.com/auth/gmail.readonly"
	// ScopeModify is required for label sync, label push and archive push.
	ScopeModify = "https://www.googleapis.com/auth/gmail.modify"
)

// credentialsFile is the OAuth client secret file as downloaded from the
// Google console ("installed" app type).
type credentialsFile struct {
	Installed *credentialsSection `json:"installed"`
	Web       *credentialsSection `json:"web"`
}

type credentialsSection struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	AuthURI      string `json:"auth_uri"`
	TokenURI     string `json:"token_uri"`
}

// tokenFile matches the token.json layout written by Google's client
// libraries, so an externally minted token can be dropped in as-is.
type tokenFile struct {
	Token        string `json:"token"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Expiry       string `json:"expiry"`
}

// NewHTTPClient builds an authenticated *http.Client from local OAuth
// files. Interactive consent flows are out of scope: the token file must
// already exist with the required scopes; expired access tokens are
// refreshed automatically via the refresh token. Scopes default to
// ScopeModify; calendar publishing passes its own.
func NewHTTPClient(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) (*http.Client, error) {
	credData, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	var creds credentialsFile
	if err := json.Unmarshal(credData, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file: %w", err)
	}
	section := creds.Installed
	if section == nil {
		section = creds.Web
	}
	if section == nil || section.ClientID == "" {
		return nil, fmt.Errorf("credentials file %s has no installed/web client", credentialsPath)
	}

	tokenURL := section.TokenURI
	if tokenURL == "" {
		tokenURL = "https://oauth2.googleapis.com/token"
	}
	authURL := section.AuthURI
	if authURL == "" {
		authURL = "https://accounts.google.com/o/oauth2/auth"
	}

	if len(scopes) == 0 {
		scopes = []string{ScopeModify}
	}
	conf := &oauth2.Config{
		ClientID:     section.ClientID,
		ClientSecret: section.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  authURL,
			TokenURL: tokenURL,
		},
		Scopes: scopes,
	}

	tok, err := loadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	return conf.Client(ctx, tok), nil
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file (re-authorize to create it): %w", err)
	}
	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	access := tf.Token
	if access == "" {
		access = tf.AccessToken
	}
	if access == "" && tf.RefreshToken == "" {
		return nil, fmt.Errorf("token file %s has neither access nor refresh token", path)
	}

	tok := &oauth2.Token{
		AccessToken:  access,
		RefreshToken: tf.RefreshToken,
	}
	if tf.Expiry != "" {
		if exp, err := time.Parse(time.RFC3339, tf.Expiry); err == nil {
			tok.Expiry = exp
		}
	}
	if tok.Expiry.IsZero() && tok.RefreshToken != "" {
		// Force a refresh on first use when no expiry is recorded.
		tok.Expiry = time.Now().Add(-time.Minute)
	}
	return tok, nil
}
