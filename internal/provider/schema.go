package provider

import "sort"

// Schema declares the configuration keys a provider reads from the
// credential store.
type Schema struct {
	// DisplayName is the human-facing provider name (e.g. "Jira").
	DisplayName string
	// Required keys must all be present and non-empty before the provider
	// may authenticate.
	Required []string
	// Optional maps optional keys to their default values.
	Optional map[string]string
}

// Missing returns the required keys absent or empty in raw, sorted.
func (s Schema) Missing(raw map[string]string) []string {
	var missing []string
	for _, key := range s.Required {
		if raw[key] == "" {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// Configured reports whether every required key is present and non-empty.
// Equivalent to len(s.Missing(raw)) == 0 without building the slice.
func (s Schema) Configured(raw map[string]string) bool {
	for _, key := range s.Required {
		if raw[key] == "" {
			return false
		}
	}
	return true
}

// Value returns raw[key], falling back to the declared optional default
// when the key is absent or empty.
func (s Schema) Value(raw map[string]string, key string) string {
	if v := raw[key]; v != "" {
		return v
	}
	return s.Optional[key]
}

// Keys returns every key the schema touches: required keys in declaration
// order, then optional keys sorted.
func (s Schema) Keys() []string {
	keys := append([]string(nil), s.Required...)
	opt := make([]string, 0, len(s.Optional))
	for k := range s.Optional {
		opt = append(opt, k)
	}
	sort.Strings(opt)
	return append(keys, opt...)
}
