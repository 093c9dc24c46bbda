// Package handoff passes the chosen directory to the calling shell through
// an append-only file whose last line is the most recent choice.
package handoff

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrEmpty is returned by Last when nothing has been handed off yet.
var ErrEmpty = errors.New("no directory handed off")

// Append writes dir followed by a newline to the end of path, creating the
// file with owner-only permissions when needed. Existing lines are kept.
func Append(path, dir string) error {
	if path == "" {
		return errors.New("handoff path is empty")
	}
	if strings.ContainsAny(dir, "\r\n") {
		return fmt.Errorf("cannot hand off %q: path contains a line break", dir)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open handoff file: %w", err)
	}
	if _, err := f.WriteString(dir + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("write handoff file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close handoff file: %w", err)
	}
	return nil
}

// Last returns the most recently appended directory.
func Last(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrEmpty
		}
		return "", fmt.Errorf("open handoff file: %w", err)
	}
	defer f.Close()

	last := ""
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			last = line
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read handoff file: %w", err)
	}
	if last == "" {
		return "", ErrEmpty
	}
	return last, nil
}
