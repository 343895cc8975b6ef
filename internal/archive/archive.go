// Package archive moves consumed feedback logs aside so the next
// fine-tune run starts from a clean log.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FeedbackLog moves the feedback log into an archive directory next to it,
// stamped with the current time. It returns the archive path.
func FeedbackLog(logPath string) (string, error) {
	// Check if the log exists
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		return "", fmt.Errorf("feedback log does not exist: %s", logPath)
	}

	// Get parent directory and create archive path
	parentDir := filepath.Dir(logPath)
	archiveDir := filepath.Join(parentDir, "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archiveName := fmt.Sprintf("feedback-%s.txt", timestamp)
	archivePath := filepath.Join(archiveDir, archiveName)

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archiveName = fmt.Sprintf("feedback-%s.txt", timestamp)
		archivePath = filepath.Join(archiveDir, archiveName)
	}

	// Rename the log into the archive
	if err := os.Rename(logPath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive feedback log: %w", err)
	}

	return archivePath, nil
}
