package config

import "time"

// defaultConfig returns the built-in defaults. User YAML is merged on top.
func defaultConfig() *Config {
	return &Config{
		Phase:                 PhaseShadow,
		ConfidenceThreshold:   0.75,
		PollIntervalSeconds:   60,
		SupplierReminderHours: 24,
		MaxIngestRetries:      4,
		MaxSendRetries:        9,
		AIDisclaimer:          map[string]string{},
		LanguageOverrides:     map[string]string{},
		LLM: &LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o",
			Timeout:  60 * time.Second,
			Addr:     "localhost:50051",
		},
		Ticketing: &TicketingConfig{
			Timeout: 30 * time.Second,
		},
		Gmail: &GmailConfig{
			Label: "INBOX",
		},
		Slack: &SlackConfig{},
		Queue: &QueueConfig{
			WorkerCount:             4,
			PollInterval:            1 * time.Second,
			PollIntervalJitter:      500 * time.Millisecond,
			JobTimeout:              5 * time.Minute,
			GracefulShutdownTimeout: 5 * time.Minute,
			SweepInterval:           1 * time.Minute,
		},
	}
}

// IngestBackoff is the retry schedule for transiently failed ingests.
// Attempts past the end of the schedule reuse the last entry until the
// configured cap exhausts the job.
var IngestBackoff = []time.Duration{
	1 * time.Minute,
	5 * time.Minute,
	30 * time.Minute,
	2 * time.Hour,
}

// SendBackoff is the queue-level retry schedule for failed sends.
var SendBackoff = []time.Duration{
	1 * time.Minute,
	5 * time.Minute,
	30 * time.Minute,
}

// BackoffAt returns the backoff for the given (zero-based) attempt.
func BackoffAt(schedule []time.Duration, attempt int) time.Duration {
	if len(schedule) == 0 {
		return time.Minute
	}
	if attempt >= len(schedule) {
		return schedule[len(schedule)-1]
	}
	if attempt < 0 {
		return schedule[0]
	}
	return schedule[attempt]
}
