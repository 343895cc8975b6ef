package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// SeedFeedbackLog writes feedback log blocks in the wire format and
// returns the log path.
func SeedFeedbackLog(t *testing.T, dir string, triples [][3]string) string {
	t.Helper()

	var sb strings.Builder
	for _, tr := range triples {
		sb.WriteString(fmt.Sprintf("Irish: %s\n", tr[0]))
		sb.WriteString(fmt.Sprintf("Translated: %s\n", tr[1]))
		sb.WriteString(fmt.Sprintf("Feedback: %s\n", tr[2]))
		sb.WriteString("-----\n")
	}

	path := filepath.Join(dir, "feedback_log.txt")
	CreateTestFile(t, path, []byte(sb.String()))
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
