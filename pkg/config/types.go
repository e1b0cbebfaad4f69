package config

import "time"

// Config is the umbrella configuration object returned by Initialize()
// and passed explicitly to every component. It is read-only at runtime.
type Config struct {
	configDir string

	// Triage behavior
	Phase                 Phase   `yaml:"phase"`
	ConfidenceThreshold   float64 `yaml:"confidence_threshold"`
	PollIntervalSeconds   int     `yaml:"poll_interval_seconds"`
	SupplierReminderHours int     `yaml:"supplier_reminder_hours"`
	MaxIngestRetries      int     `yaml:"max_ingest_retries"`
	// MaxSendRetries caps the cumulative transport attempts for one
	// pending message across send cycles; each cycle makes up to three.
	MaxSendRetries int `yaml:"max_send_retries"`

	// Identity and formatting
	InternalAgents    []string          `yaml:"internal_agents"`
	SignatureLines    []string          `yaml:"signature_lines"`
	AIDisclaimer      map[string]string `yaml:"ai_disclaimer"`
	LanguageOverrides map[string]string `yaml:"language_overrides"`

	// External services
	LLM       *LLMConfig       `yaml:"llm"`
	Ticketing *TicketingConfig `yaml:"ticketing"`
	Gmail     *GmailConfig     `yaml:"gmail"`
	Slack     *SlackConfig     `yaml:"slack"`

	// Worker pool and sweeps
	Queue *QueueConfig `yaml:"queue"`
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// PollInterval returns the mail source poll period.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// SupplierReminderWindow returns the reminder window as a duration.
func (c *Config) SupplierReminderWindow() time.Duration {
	return time.Duration(c.SupplierReminderHours) * time.Hour
}

// LLMConfig shapes the analyze call against the LLM gateway.
type LLMConfig struct {
	Provider    string        `yaml:"provider"`
	Model       string        `yaml:"model"`
	Temperature *float32      `yaml:"temperature,omitempty"`
	MaxTokens   *int32        `yaml:"max_tokens,omitempty"`
	Timeout     time.Duration `yaml:"timeout"`
	Addr        string        `yaml:"addr"`
}

// TicketingConfig holds the ticketing backend connection settings.
// The client secret is resolved from the named environment variable so
// secrets never live in YAML.
type TicketingConfig struct {
	BaseURL         string        `yaml:"base_url"`
	ClientID        string        `yaml:"client_id"`
	ClientSecretEnv string        `yaml:"client_secret_env"`
	Timeout         time.Duration `yaml:"timeout"`
}

// GmailConfig holds the inbound mailbox settings.
type GmailConfig struct {
	Label          string `yaml:"label"`
	CredentialsEnv string `yaml:"credentials_env"`
	TokenEnv       string `yaml:"token_env"`
}

// SlackConfig holds operator alert settings. Disabled unless a token is
// resolvable.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}

// QueueConfig controls how ingest jobs are polled, claimed, and processed,
// and how often the periodic sweeps run.
type QueueConfig struct {
	// WorkerCount is the number of ingest worker goroutines.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter randomizes the poll interval:
	// actual interval is PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// JobTimeout is the outer deadline for one per-message pipeline run.
	JobTimeout time.Duration `yaml:"job_timeout"`

	// GracefulShutdownTimeout is the max wait for in-flight jobs on shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// SweepInterval drives the supplier reminder and retry sweeps.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}
