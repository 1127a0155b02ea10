// Package jira implements the Jira issue-tracker provider.
//
// Credentials are a server URL, a username (email) and an API token, all
// stored in the shared credential file. Authentication is a single call to
// Jira's serverInfo endpoint with basic auth.
package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/whatdidido/whatdidido/internal/provider"
)

// Keys read from the credential store.
const (
	KeyURL      = "JIRA_URL"
	KeyUsername = "JIRA_USERNAME"
	KeyAPIKey   = "JIRA_API_KEY"
)

var schema = provider.Schema{
	DisplayName: "Jira",
	Required:    []string{KeyURL, KeyUsername, KeyAPIKey},
}

// Config is the typed view of the Jira credential keys. Either every field
// is populated or LoadConfig fails; there is no partially valid Config.
type Config struct {
	BaseURL  string
	Username string
	APIKey   string
}

// LoadConfig projects raw into a typed Config. Fails with a
// *provider.ValidationError naming every missing key.
func LoadConfig(raw map[string]string) (*Config, error) {
	if missing := schema.Missing(raw); len(missing) > 0 {
		return nil, &provider.ValidationError{Provider: "jira", Missing: missing}
	}
	return &Config{
		BaseURL:  strings.TrimRight(raw[KeyURL], "/"),
		Username: raw[KeyUsername],
		APIKey:   raw[KeyAPIKey],
	}, nil
}

// Provider implements provider.Provider for Jira.
type Provider struct {
	client *http.Client
}

var _ provider.Provider = (*Provider)(nil)

func init() {
	provider.Register(New())
}

// New returns a Jira provider.
func New() *Provider {
	return &Provider{client: &http.Client{}}
}

func (p *Provider) Name() string { return "jira" }

func (p *Provider) Schema() provider.Schema { return schema }

// serverInfo is the subset of Jira's serverInfo payload we report.
type serverInfo struct {
	ServerTitle    string `json:"serverTitle"`
	Version        string `json:"version"`
	DeploymentType string `json:"deploymentType"`
}

// Authenticate validates the credentials with one call to the serverInfo
// endpoint of the configured Jira server.
func (p *Provider) Authenticate(ctx context.Context, raw map[string]string) provider.AuthResult {
	cfg, err := LoadConfig(raw)
	if err != nil {
		return provider.AuthFailed("%v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURL+"/rest/api/2/serverInfo", nil)
	if err != nil {
		return provider.AuthFailed("building Jira request: %v", err)
	}
	req.SetBasicAuth(cfg.Username, cfg.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return provider.AuthFailed("reaching Jira at %s: %v", cfg.BaseURL, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return provider.AuthFailed("Jira rejected the credentials (%s)", resp.Status)
	default:
		return provider.AuthFailed("unexpected status from Jira serverInfo: %s", resp.Status)
	}

	var info serverInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return provider.AuthFailed("parsing Jira serverInfo response: %v", err)
	}
	if info.Version == "" {
		return provider.AuthFailed("Jira serverInfo returned no version")
	}
	return provider.Authenticated("connected to Jira server version %s", info.Version)
}
