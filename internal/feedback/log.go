package feedback

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Field prefixes and the block separator of the feedback log format.
const (
	irishPrefix      = "Irish: "
	translatedPrefix = "Translated: "
	feedbackPrefix   = "Feedback: "
	blockSeparator   = "-----"
)

// Log is the append-only feedback log. Each record is a four-line block:
//
//	Irish: <source text>
//	Translated: <model translation>
//	Feedback: <user correction or comment>
//	-----
type Log struct {
	mu   sync.Mutex
	path string
}

// NewLog creates a feedback log at the given path. The file is created on
// first append.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file path
func (l *Log) Path() string {
	return l.path
}

// Append appends a record to the log
func (l *Log) Append(r Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	dir := filepath.Dir(l.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create feedback log directory: %w", err)
		}
	}

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open feedback log: %w", err)
	}
	defer file.Close()

	block := fmt.Sprintf("%s%s\n%s%s\n%s%s\n%s\n",
		irishPrefix, flatten(r.Irish),
		translatedPrefix, flatten(r.Translated),
		feedbackPrefix, flatten(r.Feedback),
		blockSeparator)

	if _, err := file.WriteString(block); err != nil {
		return fmt.Errorf("failed to write feedback record: %w", err)
	}

	return nil
}

// ReadAll parses the log back into records. Unknown lines are skipped and
// an unterminated final block is still returned when all fields are
// present.
func (l *Log) ReadAll() ([]Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open feedback log: %w", err)
	}
	defer file.Close()

	var records []Record
	var cur Record
	var haveIrish, haveTranslated, haveFeedback bool

	reset := func() {
		cur = Record{}
		haveIrish, haveTranslated, haveFeedback = false, false, false
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, irishPrefix):
			cur.Irish = strings.TrimPrefix(line, irishPrefix)
			haveIrish = true
		case strings.HasPrefix(line, translatedPrefix):
			cur.Translated = strings.TrimPrefix(line, translatedPrefix)
			haveTranslated = true
		case strings.HasPrefix(line, feedbackPrefix):
			cur.Feedback = strings.TrimPrefix(line, feedbackPrefix)
			haveFeedback = true
		case strings.TrimSpace(line) == blockSeparator:
			if haveIrish && haveTranslated && haveFeedback {
				records = append(records, cur)
			}
			reset()
		default:
			// Skip lines that do not belong to the format
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback log: %w", err)
	}

	// Unterminated final block
	if haveIrish && haveTranslated && haveFeedback {
		records = append(records, cur)
	}

	return records, nil
}

// Count returns the number of complete records in the log
func (l *Log) Count() (int, error) {
	records, err := l.ReadAll()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// Exists reports whether the log file exists on disk
func (l *Log) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}
