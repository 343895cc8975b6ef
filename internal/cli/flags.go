package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	StateDir    string
	FeedbackLog string
	BatchFile   string
	Record      bool
	ListModels  bool
	Archive     bool

	// Web server flags
	ListenAddr string

	// Translation flags
	Provider       string
	OpenAIModel    string
	GeminiModel    string
	AnthropicModel string
	Fallback       string

	// Fine-tuning flags
	Finetune     bool
	BaseModel    string
	Epochs       int
	MinRecords   int
	AutoFinetune string

	// Partition flags
	Partition     bool
	PartitionOut  string
	MinChunkWords int
	MaxChunkWords int
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		ListenAddr:     ":8080",
		Provider:       "openai",
		OpenAIModel:    "gpt-4o-mini",
		GeminiModel:    "gemini-2.0-flash",
		AnthropicModel: "claude-sonnet-4-5-20250929",
		BaseModel:      "gpt-4o-mini-2024-07-18",
		Epochs:         3,
		MinRecords:     10,
		MinChunkWords:  50,
		MaxChunkWords:  400,
	}
}
