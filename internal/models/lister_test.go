package models

import (
	"reflect"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key")
	if lister == nil {
		t.Fatal("NewLister returned nil")
	}
	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected apiKey 'test-api-key', got '%s'", lister.apiKey)
	}
}

func TestListAvailableModels_NoKey(t *testing.T) {
	lister := NewLister("")
	if err := lister.ListAvailableModels(); err == nil {
		t.Error("Expected error without API key")
	}
}

func TestCategorize(t *testing.T) {
	ids := []string{
		"gpt-4o-mini",
		"ft:gpt-4o-mini-2024-07-18:org:aistriu:abc123",
		"whisper-1",
		"gpt-4o",
		"ft:gpt-4o-mini-2024-07-18:org:aistriu:aaa111",
		"dall-e-3",
	}

	fineTuned, chat := Categorize(ids)

	wantFineTuned := []string{
		"ft:gpt-4o-mini-2024-07-18:org:aistriu:aaa111",
		"ft:gpt-4o-mini-2024-07-18:org:aistriu:abc123",
	}
	wantChat := []string{"gpt-4o", "gpt-4o-mini"}

	if !reflect.DeepEqual(fineTuned, wantFineTuned) {
		t.Errorf("fineTuned = %v, want %v", fineTuned, wantFineTuned)
	}
	if !reflect.DeepEqual(chat, wantChat) {
		t.Errorf("chat = %v, want %v", chat, wantChat)
	}
}

func TestCategorize_Empty(t *testing.T) {
	fineTuned, chat := Categorize(nil)
	if len(fineTuned) != 0 || len(chat) != 0 {
		t.Errorf("Expected empty results, got %v and %v", fineTuned, chat)
	}
}
