package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/aistriu/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aistriu [text]",
		Short: "Irish to English translation with feedback-driven fine-tuning",
		Long: `aistriu translates Irish text to English using a hosted translation
model, collects user feedback on translation quality, and fine-tunes the
model from the accumulated feedback.

Examples:
  aistriu                          # Launch the web interface (default)
  aistriu "Dia duit"               # Translate a single text via CLI
  aistriu --batch texts.txt        # Translate multiple texts from file
  aistriu --finetune               # Fine-tune the model from feedback
  aistriu --partition              # Partition feedback into JSONL knowledge base
  aistriu --list-models            # List available models`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.aistriu.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.StateDir, "state-dir", DefaultStateDir(), "State directory for feedback log, index and model state")
	cmd.Flags().StringVar(&flags.FeedbackLog, "feedback-log", "", "Feedback log path (default is <state-dir>/feedback_log.txt)")
	cmd.Flags().StringVarP(&flags.ListenAddr, "listen", "l", flags.ListenAddr, "Web server listen address")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate texts from file (one per line)")
	cmd.Flags().BoolVar(&flags.Record, "record", false, "Record CLI translations to the feedback log")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Archive the current feedback log and exit")

	// Translation flags
	cmd.Flags().StringVarP(&flags.Provider, "provider", "p", flags.Provider, "Translation provider: openai, gemini or anthropic")
	cmd.Flags().StringVar(&flags.OpenAIModel, "openai-model", flags.OpenAIModel, "OpenAI chat model for translation")
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for translation")
	cmd.Flags().StringVar(&flags.AnthropicModel, "anthropic-model", flags.AnthropicModel, "Anthropic model for translation")
	cmd.Flags().StringVar(&flags.Fallback, "fallback", "", "Fallback provider when the primary fails (openai, gemini or anthropic)")

	// Fine-tuning flags
	cmd.Flags().BoolVar(&flags.Finetune, "finetune", false, "Fine-tune the model from the feedback log and exit")
	cmd.Flags().StringVar(&flags.BaseModel, "base-model", flags.BaseModel, "Base model for fine-tuning")
	cmd.Flags().IntVar(&flags.Epochs, "epochs", flags.Epochs, "Number of fine-tuning epochs")
	cmd.Flags().IntVar(&flags.MinRecords, "min-records", flags.MinRecords, "Minimum usable feedback records required for a fine-tune run")
	cmd.Flags().StringVar(&flags.AutoFinetune, "auto-finetune", "", "Cron schedule for automatic fine-tune runs in server mode (e.g. '0 3 * * *')")

	// Partition flags
	cmd.Flags().BoolVar(&flags.Partition, "partition", false, "Partition the feedback log into a JSONL knowledge base and exit")
	cmd.Flags().StringVar(&flags.PartitionOut, "partition-out", "", "Knowledge base output directory (default is <state-dir>/knowledge_base)")
	cmd.Flags().IntVar(&flags.MinChunkWords, "min-chunk-words", flags.MinChunkWords, "Minimum words per knowledge base chunk")
	cmd.Flags().IntVar(&flags.MaxChunkWords, "max-chunk-words", flags.MaxChunkWords, "Maximum words per knowledge base chunk")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("state.directory", cmd.Flags().Lookup("state-dir"))
	viper.BindPFlag("state.feedback_log", cmd.Flags().Lookup("feedback-log"))
	viper.BindPFlag("web.listen", cmd.Flags().Lookup("listen"))
	viper.BindPFlag("translation.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translation.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("translation.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("translation.anthropic_model", cmd.Flags().Lookup("anthropic-model"))
	viper.BindPFlag("translation.fallback", cmd.Flags().Lookup("fallback"))
	viper.BindPFlag("finetune.base_model", cmd.Flags().Lookup("base-model"))
	viper.BindPFlag("finetune.epochs", cmd.Flags().Lookup("epochs"))
	viper.BindPFlag("finetune.min_records", cmd.Flags().Lookup("min-records"))
	viper.BindPFlag("finetune.schedule", cmd.Flags().Lookup("auto-finetune"))
	viper.BindPFlag("partition.output", cmd.Flags().Lookup("partition-out"))
	viper.BindPFlag("partition.min_chunk_words", cmd.Flags().Lookup("min-chunk-words"))
	viper.BindPFlag("partition.max_chunk_words", cmd.Flags().Lookup("max-chunk-words"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".aistriu" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".aistriu")
	}

	// Environment variables
	viper.SetEnvPrefix("AISTRIU")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// DefaultStateDir returns the default state directory
func DefaultStateDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "aistriu")
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translation.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("translation.gemini_key")
}

// GetAnthropicKey retrieves the Anthropic API key from environment or config
func GetAnthropicKey() string {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key
	}

	return viper.GetString("translation.anthropic_key")
}
