package feedback

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLog_AppendAndReadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_log.txt")
	log := NewLog(path)

	records := []Record{
		NewRecord("Dia duit", "Hello", "Hello there"),
		NewRecord("Slán", "Goodbye", "Bye"),
	}

	for _, r := range records {
		if err := log.Append(r); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := log.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}

	if got[0].Irish != "Dia duit" || got[0].Translated != "Hello" || got[0].Feedback != "Hello there" {
		t.Errorf("Unexpected first record: %+v", got[0])
	}
	if got[1].Irish != "Slán" || got[1].Translated != "Goodbye" || got[1].Feedback != "Bye" {
		t.Errorf("Unexpected second record: %+v", got[1])
	}
}

func TestLog_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_log.txt")
	log := NewLog(path)

	if err := log.Append(NewRecord("Dia duit", "Hello", "Hi")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	expected := "Irish: Dia duit\nTranslated: Hello\nFeedback: Hi\n-----\n"
	if string(content) != expected {
		t.Errorf("Log content = %q, want %q", string(content), expected)
	}
}

func TestLog_ReadAll_MissingFile(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "does_not_exist.txt"))

	records, err := log.ReadAll()
	if err != nil {
		t.Fatalf("Expected no error for missing file, got: %v", err)
	}
	if records != nil {
		t.Errorf("Expected nil records, got %v", records)
	}

	if log.Exists() {
		t.Error("Exists() should be false for a missing file")
	}
}

func TestLog_ReadAll_UnterminatedBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_log.txt")
	content := "Irish: Dia duit\nTranslated: Hello\nFeedback: Hi\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write log file: %v", err)
	}

	records, err := NewLog(path).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record from unterminated block, got %d", len(records))
	}
	if records[0].Feedback != "Hi" {
		t.Errorf("Expected feedback 'Hi', got '%s'", records[0].Feedback)
	}
}

func TestLog_ReadAll_SkipsUnknownLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_log.txt")
	content := "# a stray comment\n" +
		"Irish: Dia duit\n" +
		"garbage line\n" +
		"Translated: Hello\n" +
		"Feedback: Hi\n" +
		"-----\n" +
		"Irish: Slán\n" +
		"-----\n" // incomplete block, dropped
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write log file: %v", err)
	}

	records, err := NewLog(path).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 complete record, got %d", len(records))
	}
	if records[0].Irish != "Dia duit" {
		t.Errorf("Expected 'Dia duit', got '%s'", records[0].Irish)
	}
}

func TestLog_Count(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_log.txt")
	log := NewLog(path)

	count, err := log.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 records, got %d", count)
	}

	for i := 0; i < 3; i++ {
		if err := log.Append(NewRecord("Dia duit", "Hello", "Hi")); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	count, err = log.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 records, got %d", count)
	}
}
