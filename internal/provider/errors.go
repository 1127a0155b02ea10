package provider

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a provider is not registered.
var ErrNotFound = errors.New("provider not found")

// ValidationError reports the required configuration keys missing or empty
// for a provider. It is recoverable: callers re-prompt for exactly the
// named keys instead of aborting.
type ValidationError struct {
	Provider string
	Missing  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is not configured: missing %s",
		e.Provider, strings.Join(e.Missing, ", "))
}
