package finetune

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// State records the currently active fine-tuned model under the state
// directory. Translation prefers the recorded model over the configured
// base model, so a successful fine-tune run takes effect on the next
// translation.
type State struct {
	dir string
}

// NewState creates a state handle rooted at the given directory
func NewState(dir string) *State {
	return &State{dir: dir}
}

// ModelPath returns the path of the model state file
func (s *State) ModelPath() string {
	return filepath.Join(s.dir, "model.txt")
}

// CurrentModel returns the recorded fine-tuned model ID, if any
func (s *State) CurrentModel() (string, bool) {
	data, err := os.ReadFile(s.ModelPath())
	if err != nil {
		return "", false
	}

	model := strings.TrimSpace(string(data))
	if model == "" {
		return "", false
	}
	return model, true
}

// PreferredModel returns the recorded fine-tuned model when one exists,
// otherwise the given base model.
func (s *State) PreferredModel(baseModel string) string {
	if model, ok := s.CurrentModel(); ok {
		return model
	}
	return baseModel
}

// SaveModel atomically records a fine-tuned model ID
func (s *State) SaveModel(model string) error {
	if strings.TrimSpace(model) == "" {
		return fmt.Errorf("model ID cannot be empty")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp := s.ModelPath() + ".tmp"
	if err := os.WriteFile(tmp, []byte(model+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write model state: %w", err)
	}

	if err := os.Rename(tmp, s.ModelPath()); err != nil {
		return fmt.Errorf("failed to commit model state: %w", err)
	}
	return nil
}
