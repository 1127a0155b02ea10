// Package envfile implements the flat KEY=VALUE file backing the
// whatdidido credential store.
//
// The file is line oriented: each entry is one KEY=VALUE line, split on the
// first '=' so values may themselves contain '='. Lines without '=' (blank
// lines, comments, junk) are ignored on read but preserved byte for byte
// across rewrites. Writes go through a temp file and rename so a crash
// mid-write cannot corrupt the existing file.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Entry is a single key/value pair in the store.
type Entry struct {
	Key   string
	Value string
}

// Store reads and writes a single KEY=VALUE configuration file.
// Construct with New; the file does not need to exist yet.
type Store struct {
	path string
}

// New returns a store for the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file backing this store.
func (s *Store) Path() string { return s.path }

// Ensure creates the configuration directory and an empty configuration
// file when either is missing. Idempotent; safe to call on every startup.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	return f.Close()
}

// ReadAll parses the file into a key/value map. A missing file reads as an
// empty map, not an error. Duplicate keys resolve to the last occurrence.
func (s *Store) ReadAll() (map[string]string, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}
	values := make(map[string]string)
	for _, line := range lines {
		if key, value, ok := splitLine(line); ok {
			values[key] = value
		}
	}
	return values, nil
}

// Upsert sets key to value, replacing its line in place when present and
// appending otherwise. All other lines are left untouched.
func (s *Store) Upsert(key, value string) error {
	return s.UpsertMany([]Entry{{Key: key, Value: value}})
}

// UpsertMany applies a batch of upserts as one read, N in-memory edits and
// one atomic write. The batch is all-or-nothing: an interrupted process can
// never leave only some of the entries written.
func (s *Store) UpsertMany(entries []Entry) error {
	lines, err := s.readLines()
	if err != nil {
		return err
	}
	for _, e := range entries {
		lines = apply(lines, e)
	}
	return s.writeLines(lines)
}

// Delete removes the lines for the given keys, preserving everything else.
// Keys not present in the file are a no-op.
func (s *Store) Delete(keys ...string) error {
	lines, err := s.readLines()
	if err != nil {
		return err
	}
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	kept := lines[:0]
	for _, line := range lines {
		if key, _, ok := splitLine(line); ok && drop[key] {
			continue
		}
		kept = append(kept, line)
	}
	return s.writeLines(kept)
}

func apply(lines []string, e Entry) []string {
	for i, line := range lines {
		if key, _, ok := splitLine(line); ok && key == e.Key {
			lines[i] = e.Key + "=" + e.Value
			return lines
		}
	}
	return append(lines, e.Key+"="+e.Value)
}

// splitLine splits a line on the first '=', trimming whitespace around key
// and value. ok is false for blank lines and lines without '='.
func splitLine(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}

func (s *Store) readLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}

// writeLines replaces the file content through a temp file in the same
// directory followed by a rename.
func (s *Store) writeLines(lines []string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp config file: %w", err)
	}
	name := tmp.Name()

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("setting config file mode: %w", err)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("writing config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("closing config file: %w", err)
	}
	if err := os.Rename(name, s.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("replacing config file: %w", err)
	}
	return nil
}
