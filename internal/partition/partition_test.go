package partition

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/snonux/aistriu/internal/feedback"
)

func TestPartition(t *testing.T) {
	outDir := t.TempDir()

	day1 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	records := []feedback.Record{
		{ID: "a", Irish: "Dia duit", Translated: "Hello", Feedback: "Hello there", CreatedAt: day1},
		{ID: "b", Irish: "Slán", Translated: "Goodbye", Feedback: "Bye now", CreatedAt: day1},
		{ID: "c", Irish: "Conas atá tú?", Translated: "How are you?", Feedback: "How are you doing?", CreatedAt: day2},
	}

	result, err := Partition(records, DefaultOptions(outDir))
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	if len(result.FilesWritten) != 2 {
		t.Fatalf("Expected 2 partition files, got %d: %v", len(result.FilesWritten), result.FilesWritten)
	}
	if result.TotalChunks != 3 {
		t.Errorf("Expected 3 chunks, got %d", result.TotalChunks)
	}

	partFile := filepath.Join(outDir, "2025-03-01", "part-2025-03-01.jsonl")
	chunks := readChunks(t, partFile)
	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks in day-1 partition, got %d", len(chunks))
	}

	c := chunks[0]
	if c.RecordID != "a" || c.Irish != "Dia duit" || c.ChunkText != "Hello there" {
		t.Errorf("Unexpected chunk: %+v", c)
	}
	if c.ChunkIndex != 0 {
		t.Errorf("Expected chunk index 0, got %d", c.ChunkIndex)
	}
	if c.CreatedAt == "" {
		t.Error("Expected created_at to be set")
	}
}

func TestPartition_ZeroTimeGoesToUnknown(t *testing.T) {
	outDir := t.TempDir()

	records := []feedback.Record{
		{ID: "a", Irish: "Dia duit", Translated: "Hello", Feedback: "Hello there"},
	}

	result, err := Partition(records, DefaultOptions(outDir))
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	partFile := filepath.Join(outDir, "unknown", "part-unknown.jsonl")
	if len(result.FilesWritten) != 1 || result.FilesWritten[0] != partFile {
		t.Fatalf("Expected %s, got %v", partFile, result.FilesWritten)
	}

	chunks := readChunks(t, partFile)
	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].CreatedAt != "" {
		t.Errorf("Expected empty created_at for zero time, got %q", chunks[0].CreatedAt)
	}
}

func TestPartition_SkipsEmptyFeedback(t *testing.T) {
	outDir := t.TempDir()

	records := []feedback.Record{
		{ID: "a", Irish: "Dia duit", Translated: "Hello", Feedback: "", CreatedAt: time.Now()},
	}

	result, err := Partition(records, DefaultOptions(outDir))
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}
	if result.TotalChunks != 0 || len(result.FilesWritten) != 0 {
		t.Errorf("Expected nothing written, got %+v", result)
	}
}

func TestDateKey(t *testing.T) {
	if got := DateKey(time.Time{}); got != "unknown" {
		t.Errorf("DateKey(zero) = %q, want 'unknown'", got)
	}

	ts := time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)
	if got := DateKey(ts); got != "2025-03-01" {
		t.Errorf("DateKey = %q, want '2025-03-01'", got)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		ts   string
		want string
	}{
		{"", "unknown"},
		{"2025-03-01T10:30:00Z", "2025-03-01"},
		{"2025-03-01T10:30:00", "2025-03-01"},
		{"2025-03-01 10:30:00", "2025-03-01"},
		{"2025-03-01", "2025-03-01"},
		{"03/01/2025 10:30:00", "2025-03-01"},
		{"yesterday", "unknown"},
	}

	for _, tt := range tests {
		if got := NormalizeDate(tt.ts); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.ts, got, tt.want)
		}
	}
}

func readChunks(t *testing.T, path string) []Chunk {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open partition file: %v", err)
	}
	defer file.Close()

	var chunks []Chunk
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var c Chunk
		if err := json.Unmarshal(scanner.Bytes(), &c); err != nil {
			t.Fatalf("Invalid JSONL line: %v", err)
		}
		chunks = append(chunks, c)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("Failed to scan partition file: %v", err)
	}

	return chunks
}
