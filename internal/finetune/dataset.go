package finetune

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codeberg.org/snonux/aistriu/internal/feedback"
)

// SystemPrompt fixes the task for every training example
const SystemPrompt = "You are a translator. Translate the given Irish text " +
	"to English and respond with only the English translation."

// validationEvery sends every n-th usable example to the validation split
// (a 10% holdout).
const validationEvery = 10

// Message is one chat message of a training example
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Example is one chat-format training example
type Example struct {
	Messages []Message `json:"messages"`
}

// Dataset holds the train/validation split built from feedback records
type Dataset struct {
	Train      []Example
	Validation []Example
	Skipped    int
}

// BuildDataset converts feedback records into training examples. Records
// without a usable correction are skipped and duplicate pairs are dropped.
func BuildDataset(records []feedback.Record) *Dataset {
	ds := &Dataset{}
	seen := make(map[string]bool)

	count := 0
	for _, r := range records {
		if !r.IsCorrection() {
			ds.Skipped++
			continue
		}

		irish := strings.TrimSpace(r.Irish)
		correction := strings.TrimSpace(r.Feedback)
		if irish == "" {
			ds.Skipped++
			continue
		}

		key := irish + "\x00" + correction
		if seen[key] {
			ds.Skipped++
			continue
		}
		seen[key] = true

		example := Example{
			Messages: []Message{
				{Role: "system", Content: SystemPrompt},
				{Role: "user", Content: irish},
				{Role: "assistant", Content: correction},
			},
		}

		count++
		if count%validationEvery == 0 {
			ds.Validation = append(ds.Validation, example)
		} else {
			ds.Train = append(ds.Train, example)
		}
	}

	return ds
}

// WriteJSONL writes examples to a JSONL file, one example per line
func WriteJSONL(path string, examples []Example) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create dataset directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, example := range examples {
		data, err := json.Marshal(example)
		if err != nil {
			return fmt.Errorf("failed to marshal training example: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write training example: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush dataset file: %w", err)
	}
	return nil
}
