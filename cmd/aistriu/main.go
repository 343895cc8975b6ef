package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/snonux/aistriu/internal/archive"
	"codeberg.org/snonux/aistriu/internal/cli"
	"codeberg.org/snonux/aistriu/internal/feedback"
	"codeberg.org/snonux/aistriu/internal/finetune"
	"codeberg.org/snonux/aistriu/internal/models"
	"codeberg.org/snonux/aistriu/internal/partition"
	"codeberg.org/snonux/aistriu/internal/processor"
	"codeberg.org/snonux/aistriu/internal/web"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.Archive {
		archived, err := archive.FeedbackLog(processor.FeedbackLogPath(flags))
		if err != nil {
			return fmt.Errorf("failed to archive feedback log: %w", err)
		}
		fmt.Printf("Feedback log archived to: %s\n", archived)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListAvailableModels()
	}

	// Handle --finetune flag
	if flags.Finetune {
		return runFinetune(flags)
	}

	// Handle --partition flag
	if flags.Partition {
		return runPartition(flags)
	}

	// Handle batch translation
	if flags.BatchFile != "" {
		proc, err := processor.NewProcessor(flags)
		if err != nil {
			return err
		}
		defer proc.Close()
		return proc.ProcessBatch()
	}

	// Handle single text translation
	if len(args) > 0 {
		proc, err := processor.NewProcessor(flags)
		if err != nil {
			return err
		}
		defer proc.Close()
		return proc.TranslateSingle(args[0])
	}

	// No input provided - launch the web interface by default
	return runServer(flags)
}

func runFinetune(flags *cli.Flags) error {
	runner, err := newRunner(flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("\nDone! Fine-tuned model: %s\n", model)
	return nil
}

func newRunner(flags *cli.Flags) (*finetune.Runner, error) {
	log := feedback.NewLog(processor.FeedbackLogPath(flags))
	state := finetune.NewState(flags.StateDir)

	opts := finetune.RunnerOptions{
		BaseModel:    flags.BaseModel,
		Epochs:       flags.Epochs,
		MinRecords:   flags.MinRecords,
		PollInterval: 30 * time.Second,
		WorkDir:      filepath.Join(flags.StateDir, "datasets"),
		ArchiveAfter: true,
	}

	return finetune.NewRunner(cli.GetOpenAIKey(), log, state, opts)
}

func runPartition(flags *cli.Flags) error {
	log := feedback.NewLog(processor.FeedbackLogPath(flags))

	// Prefer the index, it carries record timestamps for date partitioning
	var records []feedback.Record
	storePath := processor.StorePath(flags)
	if _, err := os.Stat(storePath); err == nil {
		store, err := feedback.OpenStore(storePath)
		if err != nil {
			return err
		}
		records, err = store.All()
		store.Close()
		if err != nil {
			return err
		}
	} else {
		var err error
		records, err = log.ReadAll()
		if err != nil {
			return err
		}
	}

	if len(records) == 0 {
		fmt.Println("No feedback records to partition")
		return nil
	}

	opts := partition.DefaultOptions(processor.PartitionOutDir(flags))
	opts.MinWords = flags.MinChunkWords
	opts.MaxWords = flags.MaxChunkWords
	opts.SourceFile = filepath.Base(log.Path())

	result, err := partition.Partition(records, opts)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %d files, %d total chunks\n", len(result.FilesWritten), result.TotalChunks)
	for i, f := range result.FilesWritten {
		if i >= 20 {
			fmt.Printf("  ... and %d more\n", len(result.FilesWritten)-i)
			break
		}
		fmt.Printf("  %s\n", f)
	}
	return nil
}

func runServer(flags *cli.Flags) error {
	provider, err := processor.BuildProvider(flags)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	log := feedback.NewLog(processor.FeedbackLogPath(flags))

	store, err := feedback.OpenStore(processor.StorePath(flags))
	if err != nil {
		sugar.Warnf("Feedback index unavailable, falling back to the log: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	server, err := web.New(web.Config{
		Addr:     flags.ListenAddr,
		Provider: provider,
		Log:      log,
		Store:    store,
		Logger:   sugar,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional scheduled fine-tune runs
	if flags.AutoFinetune != "" {
		runner, err := newRunner(flags)
		if err != nil {
			return err
		}
		scheduler := finetune.NewScheduler(runner, flags.AutoFinetune)
		if err := scheduler.Start(ctx); err != nil {
			return err
		}
		defer scheduler.Stop()
		sugar.Infof("Automatic fine-tune runs scheduled: %s", flags.AutoFinetune)
	}

	return server.Run(ctx)
}
