package testhelper

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var (
	whiteSpaces = regexp.MustCompile(`(\s+)`)
	leadingTabs = regexp.MustCompile(`^(\t+)`)
)

func replaceTab(match string) string {
	return strings.Repeat("    ", strings.Count(match, "\t"))
}

// TrimIndent removes the indentation of the first content line from every
// line of a raw string literal. The leading line break is dropped.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")

	var indent string
	if len(lines) > 1 {
		indent = whiteSpaces.FindString(lines[1])
	}

	for i, line := range lines {
		line = strings.TrimPrefix(line, indent)
		lines[i] = leadingTabs.ReplaceAllStringFunc(line, replaceTab)
	}

	return strings.Join(lines[1:], "\n")
}

// WriteFile writes content to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}

	return path
}
