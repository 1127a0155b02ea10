// Package openai implements the OpenAI service integration.
//
// Unlike the trackers, OpenAI contributes no activity of its own; it only
// needs a validated API key (plus optional base URL and model overrides,
// useful for Azure-style deployments). The live check lists models, the
// cheapest authenticated call the API offers.
package openai

import (
	"context"
	"net/http"
	"strings"

	"github.com/whatdidido/whatdidido/internal/provider"
)

// Keys read from the credential store.
const (
	KeyAPIKey        = "OPENAI_API_KEY"
	KeyBaseURL       = "OPENAI_BASE_URL"
	KeyWorkItemModel = "OPENAI_WORKITEM_SUMMARY_MODEL"
	KeySummaryModel  = "OPENAI_SUMMARY_MODEL"
)

const (
	defaultBaseURL       = "https://api.openai.com/v1"
	defaultWorkItemModel = "gpt-4o-mini"
	defaultSummaryModel  = "gpt-5"
)

var schema = provider.Schema{
	DisplayName: "OpenAI",
	Required:    []string{KeyAPIKey},
	Optional: map[string]string{
		KeyBaseURL:       defaultBaseURL,
		KeyWorkItemModel: defaultWorkItemModel,
		KeySummaryModel:  defaultSummaryModel,
	},
}

// Config is the typed view of the OpenAI keys. Optional fields carry their
// declared defaults when unset in the store.
type Config struct {
	APIKey        string
	BaseURL       string
	WorkItemModel string
	SummaryModel  string
}

// LoadConfig projects raw into a typed Config, applying optional defaults.
func LoadConfig(raw map[string]string) (*Config, error) {
	if missing := schema.Missing(raw); len(missing) > 0 {
		return nil, &provider.ValidationError{Provider: "openai", Missing: missing}
	}
	return &Config{
		APIKey:        raw[KeyAPIKey],
		BaseURL:       strings.TrimRight(schema.Value(raw, KeyBaseURL), "/"),
		WorkItemModel: schema.Value(raw, KeyWorkItemModel),
		SummaryModel:  schema.Value(raw, KeySummaryModel),
	}, nil
}

// Provider implements provider.Provider for OpenAI.
type Provider struct {
	client *http.Client
}

var _ provider.Provider = (*Provider)(nil)

func init() {
	provider.Register(New())
}

// New returns an OpenAI provider.
func New() *Provider {
	return &Provider{client: &http.Client{}}
}

func (p *Provider) Name() string { return "openai" }

func (p *Provider) Schema() provider.Schema { return schema }

// Authenticate validates the API key with one models-list call against the
// configured base URL.
func (p *Provider) Authenticate(ctx context.Context, raw map[string]string) provider.AuthResult {
	cfg, err := LoadConfig(raw)
	if err != nil {
		return provider.AuthFailed("%v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.BaseURL+"/models", nil)
	if err != nil {
		return provider.AuthFailed("building OpenAI request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return provider.AuthFailed("reaching OpenAI at %s: %v", cfg.BaseURL, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return provider.Authenticated("OpenAI connection validated (%s)", cfg.BaseURL)
	case http.StatusUnauthorized:
		return provider.AuthFailed("invalid OpenAI API key (401 Unauthorized)")
	default:
		return provider.AuthFailed("unexpected status from OpenAI: %s", resp.Status)
	}
}
