// Package linear implements the Linear issue-tracker provider.
//
// Linear authenticates with a personal API key sent as the Authorization
// header of GraphQL requests. The live check runs a viewer query and
// reports the account's name and email.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/whatdidido/whatdidido/internal/provider"
)

// KeyAPIKey is the credential-store key holding the Linear API key.
const KeyAPIKey = "LINEAR_API_KEY"

const defaultEndpoint = "https://api.linear.app/graphql"

const viewerQuery = `query { viewer { id name email } }`

var schema = provider.Schema{
	DisplayName: "Linear",
	Required:    []string{KeyAPIKey},
}

// Config is the typed view of the Linear credential keys.
type Config struct {
	APIKey string
}

// LoadConfig projects raw into a typed Config. Fails with a
// *provider.ValidationError when the API key is missing or empty.
func LoadConfig(raw map[string]string) (*Config, error) {
	if missing := schema.Missing(raw); len(missing) > 0 {
		return nil, &provider.ValidationError{Provider: "linear", Missing: missing}
	}
	return &Config{APIKey: raw[KeyAPIKey]}, nil
}

// Provider implements provider.Provider for Linear.
type Provider struct {
	// Endpoint is the Linear GraphQL endpoint. Overridden in tests.
	Endpoint string
	client   *http.Client
}

var _ provider.Provider = (*Provider)(nil)

func init() {
	provider.Register(New())
}

// New returns a Linear provider pointed at the public GraphQL API.
func New() *Provider {
	return &Provider{Endpoint: defaultEndpoint, client: &http.Client{}}
}

func (p *Provider) Name() string { return "linear" }

func (p *Provider) Schema() provider.Schema { return schema }

type viewerResponse struct {
	Data struct {
		Viewer struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"viewer"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Authenticate validates the API key with one viewer query.
func (p *Provider) Authenticate(ctx context.Context, raw map[string]string) provider.AuthResult {
	cfg, err := LoadConfig(raw)
	if err != nil {
		return provider.AuthFailed("%v", err)
	}

	payload, err := json.Marshal(map[string]string{"query": viewerQuery})
	if err != nil {
		return provider.AuthFailed("encoding viewer query: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return provider.AuthFailed("building Linear request: %v", err)
	}
	req.Header.Set("Authorization", cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := p.client
	if client == nil {
		client = &http.Client{}
	}
	resp, err := client.Do(req)
	if err != nil {
		return provider.AuthFailed("reaching Linear: %v", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return provider.AuthFailed("Linear rejected the API key (%s)", resp.Status)
	default:
		return provider.AuthFailed("unexpected status from Linear: %s", resp.Status)
	}

	var viewer viewerResponse
	if err := json.NewDecoder(resp.Body).Decode(&viewer); err != nil {
		return provider.AuthFailed("parsing Linear viewer response: %v", err)
	}
	if len(viewer.Errors) > 0 {
		return provider.AuthFailed("Linear returned an error: %s", viewer.Errors[0].Message)
	}
	if viewer.Data.Viewer.ID == "" {
		return provider.AuthFailed("Linear viewer query returned no account")
	}
	return provider.Authenticated("authenticated to Linear as %s (%s)",
		viewer.Data.Viewer.Name, viewer.Data.Viewer.Email)
}
