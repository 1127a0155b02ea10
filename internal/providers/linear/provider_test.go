package linear

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "lin_api_key", r.Header.Get("Authorization"))

		var body struct {
			Query string `json:"query"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body.Query, "viewer")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"viewer":{"id":"u1","name":"Dev Eloper","email":"dev@example.com"}}}`))
	}))
	defer srv.Close()

	p := &Provider{Endpoint: srv.URL}
	res := p.Authenticate(context.Background(), map[string]string{KeyAPIKey: "lin_api_key"})
	assert.True(t, res.OK)
	assert.Contains(t, res.Summary, "Dev Eloper")
	assert.Contains(t, res.Summary, "dev@example.com")
}

func TestAuthenticateGraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors":[{"message":"Authentication required"}]}`))
	}))
	defer srv.Close()

	p := &Provider{Endpoint: srv.URL}
	res := p.Authenticate(context.Background(), map[string]string{KeyAPIKey: "bad"})
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "Authentication required")
}

func TestAuthenticateUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	p := &Provider{Endpoint: srv.URL}
	res := p.Authenticate(context.Background(), map[string]string{KeyAPIKey: "bad"})
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Reason)
}

func TestAuthenticateNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := &Provider{Endpoint: srv.URL}
	res := p.Authenticate(context.Background(), map[string]string{KeyAPIKey: "key"})
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Reason)
}

func TestAuthenticateNotConfigured(t *testing.T) {
	res := New().Authenticate(context.Background(), map[string]string{})
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, KeyAPIKey)
}
