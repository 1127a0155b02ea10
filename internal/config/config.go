// Package config resolves the whatdidido configuration directory and the
// user-tunable settings file.
//
// Credentials live in <dir>/config.env and are owned by internal/envfile;
// this package only decides where that file is and parses the separate
// settings.yaml for non-secret tunables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigDir overrides the configuration directory when set. Tests use
// this to point the tool at a temp directory.
const EnvConfigDir = "WHATDIDIDO_CONFIG_DIR"

// Dir returns the configuration directory, honoring EnvConfigDir.
// Defaults to ~/.whatdidido.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".whatdidido")
	}
	return filepath.Join(home, ".whatdidido")
}

// FilePath returns the credential file path inside the configuration
// directory.
func FilePath() string {
	return filepath.Join(Dir(), "config.env")
}

// DebugDir returns the directory holding debug log files.
func DebugDir() string {
	return filepath.Join(Dir(), "debug")
}

// Settings holds non-credential tunables from <dir>/settings.yaml.
type Settings struct {
	HTTP  HTTPSettings  `yaml:"http"`
	Debug DebugSettings `yaml:"debug"`
}

// HTTPSettings bounds outbound provider calls.
type HTTPSettings struct {
	// TimeoutSeconds bounds each provider authentication round trip.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// DebugSettings controls debug log retention.
type DebugSettings struct {
	RetentionDays int `yaml:"retention_days"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	return &Settings{
		HTTP:  HTTPSettings{TimeoutSeconds: 10},
		Debug: DebugSettings{RetentionDays: 14},
	}
}

// LoadSettings reads <dir>/settings.yaml and applies environment
// overrides. A missing or malformed file falls back to defaults.
func LoadSettings() (*Settings, error) {
	cfg := DefaultSettings()

	path := filepath.Join(Dir(), "settings.yaml")
	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, cfg) // Ignore unmarshal errors, use defaults
	}

	if s := os.Getenv("WHATDIDIDO_HTTP_TIMEOUT"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cfg.HTTP.TimeoutSeconds = n
		}
	}

	return cfg, nil
}

// Timeout returns the HTTP timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.HTTP.TimeoutSeconds) * time.Second
}
