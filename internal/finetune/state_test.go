package finetune

import (
	"os"
	"path/filepath"
	"testing"
)

func TestState_CurrentModel_Empty(t *testing.T) {
	state := NewState(t.TempDir())

	if model, ok := state.CurrentModel(); ok {
		t.Errorf("Expected no recorded model, got '%s'", model)
	}
}

func TestState_SaveAndCurrentModel(t *testing.T) {
	state := NewState(t.TempDir())

	if err := state.SaveModel("ft:gpt-4o-mini-2024-07-18:org:aistriu:abc123"); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}

	model, ok := state.CurrentModel()
	if !ok {
		t.Fatal("Expected a recorded model")
	}
	if model != "ft:gpt-4o-mini-2024-07-18:org:aistriu:abc123" {
		t.Errorf("Unexpected model: '%s'", model)
	}

	// Overwriting replaces the recorded model
	if err := state.SaveModel("ft:gpt-4o-mini-2024-07-18:org:aistriu:def456"); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}
	model, _ = state.CurrentModel()
	if model != "ft:gpt-4o-mini-2024-07-18:org:aistriu:def456" {
		t.Errorf("Unexpected model after overwrite: '%s'", model)
	}
}

func TestState_SaveModel_Empty(t *testing.T) {
	state := NewState(t.TempDir())

	if err := state.SaveModel("   "); err == nil {
		t.Error("Expected error for empty model ID")
	}
}

func TestState_PreferredModel(t *testing.T) {
	state := NewState(t.TempDir())

	if got := state.PreferredModel("gpt-4o-mini"); got != "gpt-4o-mini" {
		t.Errorf("Expected base model, got '%s'", got)
	}

	if err := state.SaveModel("ft:gpt-4o-mini-2024-07-18:org:aistriu:abc123"); err != nil {
		t.Fatalf("SaveModel failed: %v", err)
	}

	if got := state.PreferredModel("gpt-4o-mini"); got != "ft:gpt-4o-mini-2024-07-18:org:aistriu:abc123" {
		t.Errorf("Expected fine-tuned model, got '%s'", got)
	}
}

func TestState_CurrentModel_BlankFile(t *testing.T) {
	dir := t.TempDir()
	state := NewState(dir)

	if err := os.WriteFile(filepath.Join(dir, "model.txt"), []byte("  \n"), 0644); err != nil {
		t.Fatalf("Failed to write state file: %v", err)
	}

	if model, ok := state.CurrentModel(); ok {
		t.Errorf("Expected blank state file to be ignored, got '%s'", model)
	}
}
