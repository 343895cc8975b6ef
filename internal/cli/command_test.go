package cli

import "testing"

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if cmd.Use != "aistriu [text]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	// All operation flags are registered
	names := []string{
		"state-dir", "feedback-log", "listen", "batch", "record",
		"list-models", "archive",
		"provider", "openai-model", "gemini-model", "anthropic-model", "fallback",
		"finetune", "base-model", "epochs", "min-records", "auto-finetune",
		"partition", "partition-out", "min-chunk-words", "max-chunk-words",
	}
	for _, name := range names {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Flag --%s not registered", name)
		}
	}

	if cmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Flag --config not registered")
	}
}

func TestCreateRootCommand_FlagParsing(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	args := []string{
		"--provider", "gemini",
		"--listen", ":9090",
		"--finetune",
		"--epochs", "5",
	}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if flags.Provider != "gemini" {
		t.Errorf("Expected provider 'gemini', got '%s'", flags.Provider)
	}
	if flags.ListenAddr != ":9090" {
		t.Errorf("Expected listen address ':9090', got '%s'", flags.ListenAddr)
	}
	if !flags.Finetune {
		t.Error("Expected --finetune to be set")
	}
	if flags.Epochs != 5 {
		t.Errorf("Expected 5 epochs, got %d", flags.Epochs)
	}
}

func TestDefaultStateDir(t *testing.T) {
	dir := DefaultStateDir()
	if dir == "" {
		t.Error("Expected a non-empty default state directory")
	}
}
