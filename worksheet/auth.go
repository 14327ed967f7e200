package worksheet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// Authorize returns an HTTP client authorised for the Sheets API. A service account
// key is used directly; an OAuth client credentials file requires the tokens file
// created by the 'authorise' command.
func Authorize(ctx context.Context, credentials, tokens string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	var key struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(b, &key); err != nil {
		return nil, fmt.Errorf("invalid credentials file %s (%w)", credentials, err)
	}

	if key.Type == "service_account" {
		jwt, err := google.JWTConfigFromJSON(b, SHEETS)
		if err != nil {
			return nil, err
		}

		return jwt.Client(ctx), nil
	}

	config, err := OAuthConfig(credentials)
	if err != nil {
		return nil, err
	}

	token, err := TokenFromFile(tokens)
	if err != nil {
		return nil, fmt.Errorf("no OAuth token for %s - run 'authorise' first (%w)", credentials, err)
	}

	return config.Client(ctx, token), nil
}

// OAuthConfig loads an OAuth client credentials file for the spreadsheets scope.
func OAuthConfig(credentials string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	return google.ConfigFromJSON(b, SHEETS)
}

// TokenFile returns the default tokens file for a credentials file, i.e.
// <dir>/<name>.tokens
func TokenFile(credentials string) string {
	dir, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	return filepath.Join(dir, fmt.Sprintf("%s.tokens", name))
}

// TokenFromFile retrieves a token from a local file.
func TokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

// SaveToken saves a token to a file, readable only by the owner.
func SaveToken(file string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache OAuth token (%w)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
