// Package config loads runtime configuration from environment variables.
//
// Configuration is explicit and environment-driven so the pipeline is
// restartable and observable across runs. Database settings live in
// pkg/database and are loaded separately.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all non-database runtime configuration.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Calendar CalendarConfig
	Model    ModelConfig
	Vector   VectorConfig
	Pipeline PipelineConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string
	Port int
}

// ProviderConfig holds Gmail API access settings. Tokens are read from
// files; interactive OAuth flows are out of scope.
type ProviderConfig struct {
	UserID          string
	CredentialsPath string
	TokenPath       string
	PageSize        int
}

// CalendarConfig holds Google Calendar publish settings. Scopes differ
// from Gmail, so the credential files are separate.
type CalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	DefaultTimezone string
}

// Enabled reports whether calendar publishing is configured.
func (c CalendarConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.TokenPath != ""
}

// ModelConfig holds Ollama settings for labeling, extraction and embeddings.
type ModelConfig struct {
	OllamaHost       string
	LabelModel       string
	ExtractModel     string
	EmbeddingModel   string
	EmbeddingDim     int
	RequestTimeout   time.Duration
	EmbeddingTimeout time.Duration
}

// VectorConfig holds Qdrant settings.
type VectorConfig struct {
	Host       string
	Port       int
	Collection string
	UseTLS     bool
}

// PipelineConfig holds clustering, labeling and maintenance tunables.
type PipelineConfig struct {
	SimilarityThreshold float64
	LabelVersion        string
	VectorVersion       string

	// BackfillDays seeds the checkpoint on first run (no watermark yet).
	BackfillDays int

	// PerMessageThreshold switches auto-labeling from the cluster engine to
	// the per-message labeler when the unlabelled backlog is smaller.
	PerMessageThreshold int

	// InboxRetentionDays controls inbox aging: messages older than this
	// lose the INBOX label while keeping their taxonomy labels.
	InboxRetentionDays int

	// RetentionDefaultDays is the archive fallback when neither the
	// assigned label nor its parent defines retention_days.
	RetentionDefaultDays int

	// ArchiveLabelName is the provider marker label applied on archive.
	ArchiveLabelName string

	// EventLookbackDays bounds event extraction input.
	EventLookbackDays int

	// PaymentLookbackDays bounds the recent-window slice of payment input.
	PaymentLookbackDays int
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	port, err := intEnv("MAILSCOPE_PORT", 8000)
	if err != nil {
		return nil, err
	}
	qdrantPort, err := intEnv("MAILSCOPE_QDRANT_PORT", 6334)
	if err != nil {
		return nil, err
	}
	embedDim, err := intEnv("MAILSCOPE_EMBEDDING_DIM", 384)
	if err != nil {
		return nil, err
	}
	similarity, err := floatEnv("MAILSCOPE_SIMILARITY_THRESHOLD", 0.85)
	if err != nil {
		return nil, err
	}
	pageSize, err := intEnv("MAILSCOPE_GMAIL_PAGE_SIZE", 500)
	if err != nil {
		return nil, err
	}
	backfillDays, err := intEnv("MAILSCOPE_BACKFILL_DAYS", 365)
	if err != nil {
		return nil, err
	}
	perMessage, err := intEnv("MAILSCOPE_PER_MESSAGE_THRESHOLD", 200)
	if err != nil {
		return nil, err
	}
	inboxDays, err := intEnv("MAILSCOPE_INBOX_RETENTION_DAYS", 30)
	if err != nil {
		return nil, err
	}
	retentionDays, err := intEnv("MAILSCOPE_RETENTION_DEFAULT_DAYS", 730)
	if err != nil {
		return nil, err
	}
	eventLookback, err := intEnv("MAILSCOPE_EVENT_LOOKBACK_DAYS", 90)
	if err != nil {
		return nil, err
	}
	paymentLookback, err := intEnv("MAILSCOPE_PAYMENT_LOOKBACK_DAYS", 30)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnvOrDefault("MAILSCOPE_HOST", "0.0.0.0"),
			Port: port,
		},
		Provider: ProviderConfig{
			UserID:          getEnvOrDefault("MAILSCOPE_GMAIL_USER_ID", "me"),
			CredentialsPath: getEnvOrDefault("MAILSCOPE_GMAIL_CREDENTIALS_PATH", "credentials.json"),
			TokenPath:       getEnvOrDefault("MAILSCOPE_GMAIL_TOKEN_PATH", "token.json"),
			PageSize:        pageSize,
		},
		Calendar: CalendarConfig{
			CredentialsPath: os.Getenv("MAILSCOPE_CALENDAR_CREDENTIALS_PATH"),
			TokenPath:       os.Getenv("MAILSCOPE_CALENDAR_TOKEN_PATH"),
			CalendarID:      getEnvOrDefault("MAILSCOPE_CALENDAR_ID", "primary"),
			DefaultTimezone: getEnvOrDefault("MAILSCOPE_CALENDAR_TIMEZONE", "UTC"),
		},
		Model: ModelConfig{
			OllamaHost:       os.Getenv("MAILSCOPE_OLLAMA_HOST"),
			LabelModel:       getEnvOrDefault("MAILSCOPE_OLLAMA_MODEL", "llama3.1:8b"),
			ExtractModel:     getEnvOrDefault("MAILSCOPE_EXTRACT_MODEL", "llama3.1:8b"),
			EmbeddingModel:   getEnvOrDefault("MAILSCOPE_EMBEDDING_MODEL", "all-minilm"),
			EmbeddingDim:     embedDim,
			RequestTimeout:   60 * time.Second,
			EmbeddingTimeout: 60 * time.Second,
		},
		Vector: VectorConfig{
			Host:       getEnvOrDefault("MAILSCOPE_QDRANT_HOST", "localhost"),
			Port:       qdrantPort,
			Collection: getEnvOrDefault("MAILSCOPE_QDRANT_COLLECTION", "email_subjects"),
			UseTLS:     boolEnv("MAILSCOPE_QDRANT_TLS", false),
		},
		Pipeline: PipelineConfig{
			SimilarityThreshold:  similarity,
			LabelVersion:         getEnvOrDefault("MAILSCOPE_LABEL_VERSION", "tier2-v1"),
			VectorVersion:        getEnvOrDefault("MAILSCOPE_VECTOR_VERSION", "v1"),
			BackfillDays:         backfillDays,
			PerMessageThreshold:  perMessage,
			InboxRetentionDays:   inboxDays,
			RetentionDefaultDays: retentionDays,
			ArchiveLabelName:     getEnvOrDefault("MAILSCOPE_ARCHIVE_LABEL", "Email Archive"),
			EventLookbackDays:    eventLookback,
			PaymentLookbackDays:  paymentLookback,
		},
	}

	return cfg, nil
}

// RequireModel validates that an Ollama host is configured. Labeling and
// extraction jobs cannot run without it; ingestion can.
func (c *Config) RequireModel() error {
	if c.Model.OllamaHost == "" {
		return fmt.Errorf("MAILSCOPE_OLLAMA_HOST is required for model-backed jobs")
	}
	return nil
}

// RequireProvider validates that Gmail credential files are configured.
func (c *Config) RequireProvider() error {
	if c.Provider.CredentialsPath == "" || c.Provider.TokenPath == "" {
		return fmt.Errorf("gmail credentials and token paths are required for provider jobs")
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func intEnv(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func boolEnv(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
