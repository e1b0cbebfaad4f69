package config

import "fmt"

// Validate checks the loaded configuration for values the rest of the
// system cannot tolerate. Called once at boot; configuration is immutable
// afterwards.
func (c *Config) Validate() error {
	if !c.Phase.IsValid() {
		return fmt.Errorf("phase %q: must be one of shadow, assisted, autonomous", c.Phase)
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence_threshold %v: must be in [0,1]", c.ConfidenceThreshold)
	}
	if c.PollIntervalSeconds <= 0 {
		return fmt.Errorf("poll_interval_seconds %d: must be positive", c.PollIntervalSeconds)
	}
	if c.SupplierReminderHours <= 0 {
		return fmt.Errorf("supplier_reminder_hours %d: must be positive", c.SupplierReminderHours)
	}
	if c.MaxIngestRetries < 0 || c.MaxSendRetries < 0 {
		return fmt.Errorf("retry caps must be non-negative")
	}
	if c.Queue == nil || c.Queue.WorkerCount <= 0 {
		return fmt.Errorf("queue.worker_count must be positive")
	}
	if c.Queue.JobTimeout <= 0 {
		return fmt.Errorf("queue.job_timeout must be positive")
	}
	if c.LLM == nil || c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.Ticketing == nil || c.Ticketing.BaseURL == "" {
		return fmt.Errorf("ticketing.base_url is required")
	}
	for participant, lang := range c.LanguageOverrides {
		if lang == "" {
			return fmt.Errorf("language_overrides[%s]: empty language tag", participant)
		}
	}
	return nil
}
