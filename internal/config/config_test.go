package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvConfigDir, tmp)

	if Dir() != tmp {
		t.Errorf("Dir() = %q, want %q", Dir(), tmp)
	}
	want := filepath.Join(tmp, "config.env")
	if FilePath() != want {
		t.Errorf("FilePath() = %q, want %q", FilePath(), want)
	}
}

func TestDirDefaultsToHome(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir in test environment")
	}
	want := filepath.Join(home, ".whatdidido")
	if Dir() != want {
		t.Errorf("Dir() = %q, want %q", Dir(), want)
	}
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())

	cfg, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.HTTP.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want default 10", cfg.HTTP.TimeoutSeconds)
	}
	if cfg.Debug.RetentionDays != 14 {
		t.Errorf("RetentionDays = %d, want default 14", cfg.Debug.RetentionDays)
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvConfigDir, tmp)

	content := "http:\n  timeout_seconds: 30\ndebug:\n  retention_days: 7\n"
	if err := os.WriteFile(filepath.Join(tmp, "settings.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.HTTP.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.HTTP.TimeoutSeconds)
	}
	if cfg.Debug.RetentionDays != 7 {
		t.Errorf("RetentionDays = %d, want 7", cfg.Debug.RetentionDays)
	}
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigDir, t.TempDir())
	t.Setenv("WHATDIDIDO_HTTP_TIMEOUT", "5")

	cfg, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if cfg.HTTP.TimeoutSeconds != 5 {
		t.Errorf("TimeoutSeconds = %d, want 5 from env", cfg.HTTP.TimeoutSeconds)
	}
}
