package partition

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"codeberg.org/snonux/aistriu/internal/feedback"
)

// Options configures a partition run
type Options struct {
	OutDir     string
	MinWords   int
	MaxWords   int
	SourceFile string // name recorded in each chunk object
}

// DefaultOptions returns default partition options
func DefaultOptions(outDir string) Options {
	return Options{
		OutDir:   outDir,
		MinWords: 50,
		MaxWords: 400,
	}
}

// Chunk is one JSONL object of the knowledge base
type Chunk struct {
	ID         string `json:"id"`
	RecordID   string `json:"record_id,omitempty"`
	Irish      string `json:"irish"`
	Translated string `json:"translated"`
	ChunkIndex int    `json:"chunk_index"`
	ChunkText  string `json:"chunk_text"`
	CreatedAt  string `json:"created_at,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
}

// Result summarizes a partition run
type Result struct {
	FilesWritten []string
	TotalChunks  int
}

// Partition writes feedback records as chunked JSONL partitions under
// outDir/<yyyy-mm-dd>/part-<date>.jsonl.
func Partition(records []feedback.Record, opts Options) (*Result, error) {
	if opts.MinWords <= 0 {
		opts.MinWords = 50
	}
	if opts.MaxWords <= 0 {
		opts.MaxWords = 400
	}

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &Result{}
	written := make(map[string]bool)

	for _, r := range records {
		date := DateKey(r.CreatedAt)

		chunks := ChunkText(r.Feedback, opts.MinWords, opts.MaxWords)
		if len(chunks) == 0 {
			if r.Feedback == "" {
				continue
			}
			chunks = []string{r.Feedback}
		}

		partDir := filepath.Join(opts.OutDir, date)
		if err := os.MkdirAll(partDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create partition directory: %w", err)
		}
		partFile := filepath.Join(partDir, fmt.Sprintf("part-%s.jsonl", date))

		objs := make([]Chunk, 0, len(chunks))
		for i, c := range chunks {
			objs = append(objs, Chunk{
				ID:         fmt.Sprintf("%s__%s__%d", r.ID, date, i),
				RecordID:   r.ID,
				Irish:      r.Irish,
				Translated: r.Translated,
				ChunkIndex: i,
				ChunkText:  c,
				CreatedAt:  timestamp(r.CreatedAt),
				SourceFile: opts.SourceFile,
			})
		}

		if err := appendJSONL(partFile, objs); err != nil {
			return nil, err
		}
		written[partFile] = true
		result.TotalChunks += len(objs)
	}

	for f := range written {
		result.FilesWritten = append(result.FilesWritten, f)
	}
	sort.Strings(result.FilesWritten)

	return result, nil
}

// DateKey formats a record time as a partition key, or "unknown" for the
// zero time.
func DateKey(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format("2006-01-02")
}

// NormalizeDate parses a textual timestamp into a partition key. ISO
// formats are tried first, then a date-only form, then a US datetime;
// anything else is "unknown".
func NormalizeDate(ts string) string {
	if ts == "" {
		return "unknown"
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
		"01/02/2006 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return "unknown"
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func appendJSONL(path string, objs []Chunk) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open partition file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, o := range objs {
		data, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("failed to marshal chunk: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write chunk: %w", err)
		}
	}
	return w.Flush()
}
