// Package batch reads batch translation files for CLI processing.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// Entry represents an Irish text with an optional known translation
type Entry struct {
	Irish       string
	Translation string
}

// ReadBatchFile reads texts from a file and returns Entry slice.
// Supported formats, one per line:
//   - Irish text only: "Dia duit" (will be translated)
//   - With translation: "Dia duit = Hello" (known pair, recorded as-is)
//
// Blank lines and lines starting with '#' are skipped.
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, "=") {
			parts := strings.SplitN(line, "=", 2)
			irish := strings.TrimSpace(parts[0])
			english := strings.TrimSpace(parts[1])

			if irish == "" {
				// No source text, nothing to translate or record
				continue
			}

			entries = append(entries, Entry{
				Irish:       irish,
				Translation: english,
			})
		} else {
			entries = append(entries, Entry{Irish: line})
		}
	}

	return entries, nil
}
