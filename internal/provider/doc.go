// Package provider defines the contract shared by all work-tracking
// integrations: a key schema describing the configuration each provider
// reads from the credential store, and a live authentication check that
// reports provider metadata as a value.
//
// Providers are registered explicitly via Register() and looked up via
// Get(). Authentication outcomes are AuthResult values, never errors, so a
// misconfigured or unreachable provider cannot abort checks against the
// others.
package provider
