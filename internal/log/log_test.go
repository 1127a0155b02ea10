package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStderrLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Stderr: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Info("quiet info")
	Warn("loud warning")

	out := buf.String()
	if strings.Contains(out, "quiet info") {
		t.Errorf("info leaked to stderr without verbose: %q", out)
	}
	if !strings.Contains(out, "loud warning") {
		t.Errorf("warning missing from stderr: %q", out)
	}
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(Options{Verbose: true, Stderr: &buf}); err != nil {
		t.Fatalf("Init: %v", err)
	}

	Debug("debug detail")
	if !strings.Contains(buf.String(), "debug detail") {
		t.Errorf("debug missing from verbose stderr: %q", buf.String())
	}
}

func TestFileHandlerAlwaysDebug(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := Init(Options{Stderr: &buf, DebugDir: dir}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer Close()

	Debug("file only detail")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 debug file, got %d", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "file only detail") {
		t.Errorf("debug record missing from file: %q", string(data))
	}
	if strings.Contains(buf.String(), "file only detail") {
		t.Errorf("debug leaked to stderr: %q", buf.String())
	}
}

func TestCleanupRemovesOldFiles(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "2020-01-01.jsonl")
	keep := filepath.Join(dir, "unrelated.txt")
	for _, p := range []string{old, keep} {
		if err := os.WriteFile(p, []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	Cleanup(dir, 14)

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("expected old debug file to be removed")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Error("expected non-log file to survive cleanup")
	}
}
