package provider

import "fmt"

// AuthResult is the outcome of one live authentication attempt. It is
// produced fresh per check and never persisted. Failures travel as values,
// not errors: one rejected provider must never prevent the others from
// being checked.
type AuthResult struct {
	OK bool
	// Summary is a human-readable identity or metadata line on success,
	// e.g. "connected to Jira server version 9.4.0".
	Summary string
	// Reason explains the failure when OK is false. Always non-empty.
	Reason string
}

// Authenticated returns a successful result with a formatted summary.
func Authenticated(format string, args ...any) AuthResult {
	return AuthResult{OK: true, Summary: fmt.Sprintf(format, args...)}
}

// AuthFailed returns a failed result with a formatted reason.
func AuthFailed(format string, args ...any) AuthResult {
	return AuthResult{OK: false, Reason: fmt.Sprintf(format, args...)}
}
