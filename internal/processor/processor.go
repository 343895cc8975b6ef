package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"codeberg.org/snonux/aistriu/internal/batch"
	"codeberg.org/snonux/aistriu/internal/cli"
	"codeberg.org/snonux/aistriu/internal/feedback"
	"codeberg.org/snonux/aistriu/internal/finetune"
	"codeberg.org/snonux/aistriu/internal/translation"
)

// Processor handles the CLI translation logic
type Processor struct {
	flags    *cli.Flags
	provider translation.Provider
	cache    *translation.Cache
	log      *feedback.Log
	store    *feedback.Store
}

// NewProcessor creates a new processor from the parsed flags
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	provider, err := BuildProvider(flags)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		flags:    flags,
		provider: provider,
		cache:    translation.NewCache(),
		log:      feedback.NewLog(FeedbackLogPath(flags)),
	}

	if flags.Record {
		store, err := feedback.OpenStore(StorePath(flags))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: feedback index unavailable: %v\n", err)
		} else {
			p.store = store
		}
	}

	return p, nil
}

// Close releases the feedback index, if open
func (p *Processor) Close() {
	if p.store != nil {
		p.store.Close()
	}
}

// BuildProvider constructs the configured translation provider, wrapped in
// a circuit breaker and an optional fallback. The OpenAI model is resolved
// per translation, preferring the fine-tuned model on record, so a run that
// completes while the server is up takes effect immediately.
func BuildProvider(flags *cli.Flags) (translation.Provider, error) {
	primary, err := buildOne(flags, flags.Provider)
	if err != nil {
		return nil, err
	}

	if flags.Fallback == "" {
		return primary, nil
	}
	if flags.Fallback == flags.Provider {
		return nil, fmt.Errorf("fallback provider must differ from primary: %s", flags.Fallback)
	}

	fallback, err := buildOne(flags, flags.Fallback)
	if err != nil {
		return nil, err
	}

	return translation.NewProviderWithFallback(primary, fallback), nil
}

func buildOne(flags *cli.Flags, name string) (translation.Provider, error) {
	state := finetune.NewState(flags.StateDir)

	config := &translation.Config{
		Provider:    name,
		OpenAIKey:   cli.GetOpenAIKey(),
		OpenAIModel: flags.OpenAIModel,
		OpenAIModelFunc: func() string {
			return state.PreferredModel(flags.OpenAIModel)
		},
		GeminiKey:      cli.GetGeminiKey(),
		GeminiModel:    flags.GeminiModel,
		AnthropicKey:   cli.GetAnthropicKey(),
		AnthropicModel: flags.AnthropicModel,
	}

	// Use config file values if not overridden by flags
	if flags.GeminiModel == "gemini-2.0-flash" && viper.IsSet("translation.gemini_model") {
		config.GeminiModel = viper.GetString("translation.gemini_model")
	}
	if flags.AnthropicModel == "claude-sonnet-4-5-20250929" && viper.IsSet("translation.anthropic_model") {
		config.AnthropicModel = viper.GetString("translation.anthropic_model")
	}

	provider, err := translation.NewProvider(config)
	if err != nil {
		return nil, err
	}

	return translation.NewBreakerProvider(provider), nil
}

// FeedbackLogPath resolves the feedback log path from flags
func FeedbackLogPath(flags *cli.Flags) string {
	if flags.FeedbackLog != "" {
		return flags.FeedbackLog
	}
	return filepath.Join(flags.StateDir, "feedback_log.txt")
}

// StorePath resolves the feedback index path from flags
func StorePath(flags *cli.Flags) string {
	return filepath.Join(flags.StateDir, "feedback.db")
}

// PartitionOutDir resolves the knowledge base output directory from flags
func PartitionOutDir(flags *cli.Flags) string {
	if flags.PartitionOut != "" {
		return flags.PartitionOut
	}
	return filepath.Join(flags.StateDir, "knowledge_base")
}

// TranslateSingle translates a single text from the command line
func (p *Processor) TranslateSingle(text string) error {
	if err := translation.ValidateIrishText(text); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	fmt.Printf("\nTranslating via %s...\n", p.provider.Name())

	result, err := p.translate(text)
	if err != nil {
		return err
	}

	fmt.Printf("Irish:   %s\n", text)
	fmt.Printf("English: %s\n", result)

	if p.flags.Record {
		p.record(text, result, "")
	}

	return nil
}

// ProcessBatch translates multiple texts from a batch file
func (p *Processor) ProcessBatch() error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	// Validate everything up front
	for _, entry := range entries {
		if err := translation.ValidateIrishText(entry.Irish); err != nil {
			return fmt.Errorf("invalid text '%s': %w", entry.Irish, err)
		}
	}

	processedCount := 0
	errorCount := 0

	for i, entry := range entries {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(entries), entry.Irish)

		if entry.Translation != "" {
			// Known pair, no model call needed
			fmt.Printf("  Using provided translation: %s\n", entry.Translation)
			if p.flags.Record {
				p.record(entry.Irish, "", entry.Translation)
			}
			processedCount++
			continue
		}

		result, err := p.translate(entry.Irish)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error translating '%s': %v\n", entry.Irish, err)
			errorCount++
			// Continue with next text
			continue
		}

		fmt.Printf("  Translation: %s\n", result)
		if p.flags.Record {
			p.record(entry.Irish, result, "")
		}
		processedCount++
	}

	// Print summary
	fmt.Printf("\n=== Batch Translation Summary ===\n")
	fmt.Printf("Total texts: %d\n", len(entries))
	fmt.Printf("Processed: %d\n", processedCount)
	if errorCount > 0 {
		fmt.Printf("Errors: %d\n", errorCount)
	}
	fmt.Printf("=================================\n")

	return nil
}

func (p *Processor) translate(text string) (string, error) {
	if cached, ok := p.cache.Get(text); ok {
		return cached, nil
	}

	result, err := p.provider.Translate(context.Background(), text)
	if err != nil {
		return "", err
	}

	p.cache.Add(text, result)
	return result, nil
}

// record appends a record to the feedback log and mirrors it into the
// index. Index failures are non-fatal, the log is canonical.
func (p *Processor) record(irish, translated, userFeedback string) {
	rec := feedback.NewRecord(irish, translated, userFeedback)

	if err := p.log.Append(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to record feedback: %v\n", err)
		return
	}

	if p.store != nil {
		if err := p.store.Insert(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to index feedback: %v\n", err)
		}
	}
}
