package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister
func NewLister(apiKey string) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
	}
}

// ListAvailableModels lists available OpenAI models, separating fine-tuned
// translation models from stock chat models.
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .aistriu.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	fineTuned, chat := Categorize(modelIDs(models.Models))

	fmt.Println("Available OpenAI Models:")

	fmt.Println("\nFine-tuned Models (from feedback fine-tune runs):")
	if len(fineTuned) == 0 {
		fmt.Println("  No fine-tuned models found")
	} else {
		for _, model := range fineTuned {
			fmt.Printf("  %s\n", model)
		}
	}

	fmt.Println("\nChat Models (usable as translation backends):")
	if len(chat) == 0 {
		fmt.Println("  No chat models found")
	} else {
		for _, model := range chat {
			fmt.Printf("  %s\n", model)
		}
	}

	return nil
}

// Categorize splits model IDs into fine-tuned models and stock chat
// models, both sorted. Models in neither category are dropped.
func Categorize(ids []string) (fineTuned, chat []string) {
	for _, id := range ids {
		switch {
		case strings.HasPrefix(id, "ft:"):
			fineTuned = append(fineTuned, id)
		case strings.Contains(id, "gpt"):
			chat = append(chat, id)
		}
	}

	sort.Strings(fineTuned)
	sort.Strings(chat)
	return fineTuned, chat
}

func modelIDs(models []openai.Model) []string {
	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}
	return ids
}
