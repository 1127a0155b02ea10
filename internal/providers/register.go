// Package providers registers every built-in work-tracking provider.
//
// Import this package to make all providers visible in the registry; each
// provider's init() handles its own registration.
package providers

import (
	// Import all providers to trigger their init() registration.
	_ "github.com/whatdidido/whatdidido/internal/providers/github" // registers GitHub
	_ "github.com/whatdidido/whatdidido/internal/providers/jira"   // registers Jira
	_ "github.com/whatdidido/whatdidido/internal/providers/linear" // registers Linear
	_ "github.com/whatdidido/whatdidido/internal/providers/openai" // registers OpenAI
)

// RegisterAll is a no-op provided for explicit registration semantics.
// Providers register themselves via init() when this package is imported;
// calling RegisterAll() makes that dependency visible at the call site.
func RegisterAll() {}
