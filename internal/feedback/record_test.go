package feedback

import (
	"strings"
	"testing"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord("Dia duit", "Hello", "Hello there")

	if r.ID == "" {
		t.Error("Expected a generated ID")
	}
	if r.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
	if r.Irish != "Dia duit" {
		t.Errorf("Expected 'Dia duit', got '%s'", r.Irish)
	}
}

func TestNewRecord_FlattensNewlines(t *testing.T) {
	r := NewRecord("Dia duit\na chara", "Hello\r\nfriend", "Hi\rthere")

	for _, field := range []string{r.Irish, r.Translated, r.Feedback} {
		if strings.ContainsAny(field, "\n\r") {
			t.Errorf("Field still contains newlines: %q", field)
		}
	}

	if r.Irish != "Dia duit a chara" {
		t.Errorf("Expected 'Dia duit a chara', got '%s'", r.Irish)
	}
	if r.Translated != "Hello friend" {
		t.Errorf("Expected 'Hello friend', got '%s'", r.Translated)
	}
}

func TestRecord_IsCorrection(t *testing.T) {
	tests := []struct {
		name       string
		translated string
		feedback   string
		want       bool
	}{
		{"empty feedback", "Hello", "", false},
		{"whitespace feedback", "Hello", "   ", false},
		{"same as translation", "Hello", "Hello", false},
		{"same ignoring case", "Hello", "hello", false},
		{"same with whitespace", "Hello", "  Hello  ", false},
		{"actual correction", "Hello", "Hello there", true},
		{"comment", "Hello", "sounds too formal", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{Translated: tt.translated, Feedback: tt.feedback}
			if got := r.IsCorrection(); got != tt.want {
				t.Errorf("IsCorrection() = %v, want %v", got, tt.want)
			}
		})
	}
}
