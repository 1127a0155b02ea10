package provider

import "context"

// Provider is implemented by every work-tracking integration.
type Provider interface {
	// Name returns the provider identifier (e.g. "jira", "github").
	Name() string

	// Schema declares the configuration keys the provider needs.
	Schema() Schema

	// Authenticate performs exactly one round trip against the provider's
	// identity or metadata endpoint using credentials from raw. Every
	// failure (missing configuration, network error, rejected credentials,
	// malformed response, timeout) is reported in the returned AuthResult;
	// the call never returns a Go error and must not panic across the
	// provider boundary.
	Authenticate(ctx context.Context, raw map[string]string) AuthResult
}

// Configured reports whether all of p's required keys are present and
// non-empty in raw. Purely structural; performs no network I/O. Callers
// check this before attempting Authenticate.
func Configured(p Provider, raw map[string]string) bool {
	return p.Schema().Configured(raw)
}
