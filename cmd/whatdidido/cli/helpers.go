package cli

import (
	"strings"

	"github.com/whatdidido/whatdidido/internal/config"
	"github.com/whatdidido/whatdidido/internal/envfile"
	"github.com/whatdidido/whatdidido/internal/provider"
	"github.com/whatdidido/whatdidido/internal/ui"
)

// openStore returns the credential store at the resolved config path.
func openStore() *envfile.Store {
	return envfile.New(config.FilePath())
}

// sensitiveMarkers flag keys whose values are redacted in output.
var sensitiveMarkers = []string{"API_KEY", "TOKEN", "PASSWORD"}

func isSensitiveKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, marker := range sensitiveMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

// redactValue anonymizes a secret for display: long values keep their
// first and last four characters, short ones collapse entirely.
func redactValue(value string) string {
	if value == "" {
		return ""
	}
	if len(value) > 8 {
		return value[:4] + "..." + value[len(value)-4:]
	}
	return "****"
}

// reportAuth prints one provider's authentication outcome.
func reportAuth(name string, res provider.AuthResult) {
	if res.OK {
		ui.Successf("%s: %s", name, res.Summary)
	} else {
		ui.Errorf("%s: %s", name, res.Reason)
	}
}
