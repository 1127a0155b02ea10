package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whatdidido/whatdidido/internal/envfile"
	"github.com/whatdidido/whatdidido/internal/provider"
)

// newUserServer returns a test server that accepts exactly one bearer token
// on /user and answers as the given login.
func newUserServer(t *testing.T, wantToken, login string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer "+wantToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"login":"` + login + `","name":"Test User"}`))
	}))
}

func TestLoadConfigMissingToken(t *testing.T) {
	cfg, err := LoadConfig(map[string]string{})
	assert.Nil(t, cfg)

	var verr *provider.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{KeyToken}, verr.Missing)
}

func TestAuthenticateSuccess(t *testing.T) {
	srv := newUserServer(t, "ghp_testtoken", "octocat")
	defer srv.Close()

	p := &Provider{APIBase: srv.URL}
	res := p.Authenticate(context.Background(), map[string]string{KeyToken: "ghp_testtoken"})
	assert.True(t, res.OK)
	assert.Contains(t, res.Summary, "octocat")
}

func TestAuthenticateUnauthorized(t *testing.T) {
	srv := newUserServer(t, "ghp_goodtoken", "octocat")
	defer srv.Close()

	p := &Provider{APIBase: srv.URL}
	res := p.Authenticate(context.Background(), map[string]string{KeyToken: "ghp_wrong"})
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "401")
}

func TestAuthenticateForbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	p := &Provider{APIBase: srv.URL}
	res := p.Authenticate(context.Background(), map[string]string{KeyToken: "ghp_token"})
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "403")
}

// A network failure must come back as a failed AuthResult, never as a panic
// or an error crossing the provider boundary.
func TestAuthenticateNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p := &Provider{APIBase: srv.URL}
	res := p.Authenticate(context.Background(), map[string]string{KeyToken: "ghp_token"})
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Reason)
}

func TestAuthenticateNotConfigured(t *testing.T) {
	p := New()
	res := p.Authenticate(context.Background(), nil)
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, KeyToken)
}

// Full lifecycle: empty store, configure the token as a batch, verify the
// structural check, authenticate against a mocked identity endpoint, then
// corrupt the token and confirm authentication fails without touching the
// stored file.
func TestEndToEndConfigureAndAuthenticate(t *testing.T) {
	srv := newUserServer(t, "ghp_valid", "octocat")
	defer srv.Close()

	store := envfile.New(filepath.Join(t.TempDir(), "config.env"))
	require.NoError(t, store.Ensure())

	raw, err := store.ReadAll()
	require.NoError(t, err)
	assert.False(t, schema.Configured(raw))

	require.NoError(t, store.UpsertMany([]envfile.Entry{{Key: KeyToken, Value: "ghp_valid"}}))
	raw, err = store.ReadAll()
	require.NoError(t, err)
	require.True(t, schema.Configured(raw))

	p := &Provider{APIBase: srv.URL}
	res := p.Authenticate(context.Background(), raw)
	require.True(t, res.OK)
	assert.Contains(t, res.Summary, "octocat")

	// Corrupt the token: authentication fails with a reason, and the file
	// on disk is exactly what the last upsert wrote.
	require.NoError(t, store.Upsert(KeyToken, "ghp_corrupt"))
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	raw, err = store.ReadAll()
	require.NoError(t, err)
	res = p.Authenticate(context.Background(), raw)
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Reason)

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
