package log

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"
)

// FileWriter appends to dir/YYYY-MM-DD.jsonl, rotating when the date
// changes.
type FileWriter struct {
	dir  string
	mu   sync.Mutex
	file *os.File
	day  string
}

// NewFileWriter creates a FileWriter rooted at dir, creating it if needed.
func NewFileWriter(dir string) (*FileWriter, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating debug log dir: %w", err)
	}
	fw := &FileWriter{dir: dir}
	if err := fw.open(time.Now()); err != nil {
		return nil, err
	}
	return fw, nil
}

// Write implements io.Writer and handles daily rotation.
func (fw *FileWriter) Write(p []byte) (int, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	now := time.Now()
	if now.Format("2006-01-02") != fw.day {
		if err := fw.open(now); err != nil {
			return 0, err
		}
	}
	return fw.file.Write(p)
}

// Close closes the underlying file.
func (fw *FileWriter) Close() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.file == nil {
		return nil
	}
	err := fw.file.Close()
	fw.file = nil
	return err
}

func (fw *FileWriter) open(now time.Time) error {
	if fw.file != nil {
		fw.file.Close()
	}
	day := now.Format("2006-01-02")
	f, err := os.OpenFile(filepath.Join(fw.dir, day+".jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening debug log file: %w", err)
	}
	fw.file = f
	fw.day = day
	return nil
}

// logFilePattern matches YYYY-MM-DD.jsonl filenames.
var logFilePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}\.jsonl$`)

// Cleanup removes debug log files older than retentionDays. Best effort;
// unreadable directories and stray files are skipped.
func Cleanup(dir string, retentionDays int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	for _, entry := range entries {
		if !logFilePattern.MatchString(entry.Name()) {
			continue
		}
		day, err := time.Parse("2006-01-02", strings.TrimSuffix(entry.Name(), ".jsonl"))
		if err != nil || !day.Before(cutoff) {
			continue
		}
		os.Remove(filepath.Join(dir, entry.Name()))
	}
}
