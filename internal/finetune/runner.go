package finetune

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/aistriu/internal/archive"
	"codeberg.org/snonux/aistriu/internal/feedback"
)

// RunnerOptions configures a fine-tune run
type RunnerOptions struct {
	BaseModel    string
	Epochs       int
	MinRecords   int
	PollInterval time.Duration
	WorkDir      string // where dataset files are written
	ArchiveAfter bool   // archive the consumed feedback log after success
}

// DefaultRunnerOptions returns default fine-tuning options
func DefaultRunnerOptions() RunnerOptions {
	return RunnerOptions{
		BaseModel:    "gpt-4o-mini-2024-07-18",
		Epochs:       3,
		MinRecords:   10,
		PollInterval: 30 * time.Second,
	}
}

// Runner executes fine-tuning runs over the feedback log. At most one run
// is in flight per process.
type Runner struct {
	client *openai.Client
	log    *feedback.Log
	state  *State
	opts   RunnerOptions

	mu sync.Mutex
}

// NewRunner creates a fine-tune runner
func NewRunner(apiKey string, log *feedback.Log, state *State, opts RunnerOptions) (*Runner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = 30 * time.Second
	}
	if opts.WorkDir == "" {
		opts.WorkDir = filepath.Dir(log.Path())
	}

	return &Runner{
		client: openai.NewClient(apiKey),
		log:    log,
		state:  state,
		opts:   opts,
	}, nil
}

// Run builds a dataset from the feedback log, uploads it, runs a
// fine-tuning job to completion and records the resulting model. It
// returns the fine-tuned model ID.
func (r *Runner) Run(ctx context.Context) (string, error) {
	if !r.mu.TryLock() {
		return "", fmt.Errorf("a fine-tune run is already in progress")
	}
	defer r.mu.Unlock()

	if !r.log.Exists() {
		return "", fmt.Errorf("feedback log '%s' does not exist", r.log.Path())
	}

	records, err := r.log.ReadAll()
	if err != nil {
		return "", err
	}

	ds := BuildDataset(records)
	usable := len(ds.Train) + len(ds.Validation)
	if usable < r.opts.MinRecords {
		return "", fmt.Errorf("not enough usable feedback records: have %d, need %d",
			usable, r.opts.MinRecords)
	}

	fmt.Printf("Fine-tuning dataset: %d training, %d validation examples (%d records skipped)\n",
		len(ds.Train), len(ds.Validation), ds.Skipped)

	// Write dataset files
	timestamp := time.Now().Format("20060102-150405")
	trainPath := filepath.Join(r.opts.WorkDir, fmt.Sprintf("train-%s.jsonl", timestamp))
	if err := WriteJSONL(trainPath, ds.Train); err != nil {
		return "", err
	}

	validationPath := ""
	if len(ds.Validation) > 0 {
		validationPath = filepath.Join(r.opts.WorkDir, fmt.Sprintf("validation-%s.jsonl", timestamp))
		if err := WriteJSONL(validationPath, ds.Validation); err != nil {
			return "", err
		}
	}

	// Upload dataset files
	trainFile, err := r.uploadFile(ctx, trainPath)
	if err != nil {
		return "", fmt.Errorf("failed to upload training file: %w", err)
	}
	fmt.Printf("Uploaded training file: %s\n", trainFile.ID)

	validationFileID := ""
	if validationPath != "" {
		validationFile, err := r.uploadFile(ctx, validationPath)
		if err != nil {
			return "", fmt.Errorf("failed to upload validation file: %w", err)
		}
		validationFileID = validationFile.ID
		fmt.Printf("Uploaded validation file: %s\n", validationFileID)
	}

	// Continue from the previous fine-tuned model when one exists
	model := r.state.PreferredModel(r.opts.BaseModel)

	job, err := r.client.CreateFineTuningJob(ctx, openai.FineTuningJobRequest{
		TrainingFile:   trainFile.ID,
		ValidationFile: validationFileID,
		Model:          model,
		Suffix:         "aistriu",
		Hyperparameters: &openai.Hyperparameters{
			Epochs: r.opts.Epochs,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create fine-tuning job: %w", err)
	}
	fmt.Printf("Fine-tuning job %s started on model %s\n", job.ID, model)

	fineTunedModel, err := r.waitForJob(ctx, job.ID)
	if err != nil {
		return "", err
	}

	if err := r.state.SaveModel(fineTunedModel); err != nil {
		return "", err
	}
	fmt.Printf("Fine-tuned model recorded: %s\n", fineTunedModel)

	if r.opts.ArchiveAfter {
		if archived, err := archive.FeedbackLog(r.log.Path()); err != nil {
			fmt.Printf("Warning: failed to archive feedback log: %v\n", err)
		} else {
			fmt.Printf("Feedback log archived to: %s\n", archived)
		}
	}

	return fineTunedModel, nil
}

func (r *Runner) uploadFile(ctx context.Context, path string) (openai.File, error) {
	return r.client.CreateFile(ctx, openai.FileRequest{
		FileName: filepath.Base(path),
		FilePath: path,
		Purpose:  "fine-tune",
	})
}

// waitForJob polls the job until it reaches a terminal status
func (r *Runner) waitForJob(ctx context.Context, jobID string) (string, error) {
	ticker := time.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}

		job, err := r.client.RetrieveFineTuningJob(ctx, jobID)
		if err != nil {
			return "", fmt.Errorf("failed to poll fine-tuning job: %w", err)
		}

		switch job.Status {
		case "succeeded":
			if job.FineTunedModel == "" {
				return "", fmt.Errorf("job %s succeeded but returned no model", jobID)
			}
			return job.FineTunedModel, nil
		case "failed", "cancelled":
			return "", fmt.Errorf("fine-tuning job %s %s", jobID, job.Status)
		default:
			fmt.Printf("Fine-tuning job %s: %s\n", jobID, job.Status)
		}
	}
}
