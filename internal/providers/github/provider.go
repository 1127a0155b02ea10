// Package github implements the GitHub code-host provider.
//
// A single personal access token is stored in the shared credential file.
// Authentication is one call to the /user endpoint through an oauth2
// static-token client; success reports the authenticated login.
package github

import (
	"context"
	"encoding/json"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/whatdidido/whatdidido/internal/provider"
)

// KeyToken is the credential-store key holding the personal access token.
const KeyToken = "GITHUB_TOKEN"

const defaultAPIBase = "https://api.github.com"

var schema = provider.Schema{
	DisplayName: "GitHub",
	Required:    []string{KeyToken},
}

// Config is the typed view of the GitHub credential keys.
type Config struct {
	Token string
}

// LoadConfig projects raw into a typed Config. Fails with a
// *provider.ValidationError when the token is missing or empty.
func LoadConfig(raw map[string]string) (*Config, error) {
	if missing := schema.Missing(raw); len(missing) > 0 {
		return nil, &provider.ValidationError{Provider: "github", Missing: missing}
	}
	return &Config{Token: raw[KeyToken]}, nil
}

// Provider implements provider.Provider for GitHub.
type Provider struct {
	// APIBase is the GitHub REST endpoint. Overridden in tests.
	APIBase string
}

var _ provider.Provider = (*Provider)(nil)

func init() {
	provider.Register(New())
}

// New returns a GitHub provider pointed at the public API.
func New() *Provider {
	return &Provider{APIBase: defaultAPIBase}
}

func (p *Provider) Name() string { return "github" }

func (p *Provider) Schema() provider.Schema { return schema }

// Authenticate validates the token with one call to the /user endpoint.
func (p *Provider) Authenticate(ctx context.Context, raw map[string]string) provider.AuthResult {
	cfg, err := LoadConfig(raw)
	if err != nil {
		return provider.AuthFailed("%v", err)
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	client := oauth2.NewClient(ctx, src)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.APIBase+"/user", nil)
	if err != nil {
		return provider.AuthFailed("building GitHub request: %v", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "whatdidido")

	resp, err := client.Do(req)
	if err != nil {
		return provider.AuthFailed("reaching GitHub: %v", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return provider.AuthFailed("invalid GitHub token (401 Unauthorized)")
	case http.StatusForbidden:
		return provider.AuthFailed("GitHub token rejected (403 Forbidden) - the token may lack scopes or you may be rate limited")
	default:
		return provider.AuthFailed("unexpected status from GitHub: %s", resp.Status)
	}

	var user struct {
		Login string `json:"login"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return provider.AuthFailed("parsing GitHub user response: %v", err)
	}
	if user.Login == "" {
		return provider.AuthFailed("GitHub returned an empty login")
	}
	return provider.Authenticated("authenticated to GitHub as %s", user.Login)
}
