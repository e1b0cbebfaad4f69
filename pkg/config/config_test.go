package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return dir
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()

	t.Run("user yaml merges over defaults", func(t *testing.T) {
		dir := writeConfig(t, `
phase: autonomous
confidence_threshold: 0.9
internal_agents:
  - ops@shipdesk.example
ticketing:
  base_url: https://backend.example
  client_id: shipdesk
queue:
  worker_count: 2
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)

		assert.Equal(t, PhaseAutonomous, cfg.Phase)
		assert.InDelta(t, 0.9, cfg.ConfidenceThreshold, 1e-9)
		assert.Equal(t, []string{"ops@shipdesk.example"}, cfg.InternalAgents)
		assert.Equal(t, "https://backend.example", cfg.Ticketing.BaseURL)
		assert.Equal(t, 2, cfg.Queue.WorkerCount)

		// Untouched values keep their defaults.
		assert.Equal(t, 60, cfg.PollIntervalSeconds)
		assert.Equal(t, 24, cfg.SupplierReminderHours)
		assert.Equal(t, 9, cfg.MaxSendRetries)
		assert.Equal(t, 5*time.Minute, cfg.Queue.JobTimeout)
	})

	t.Run("environment variables expand", func(t *testing.T) {
		t.Setenv("TEST_BACKEND_URL", "https://env.example")
		dir := writeConfig(t, `
ticketing:
  base_url: "{{.TEST_BACKEND_URL}}"
`)
		cfg, err := Initialize(ctx, dir)
		require.NoError(t, err)
		assert.Equal(t, "https://env.example", cfg.Ticketing.BaseURL)
	})

	t.Run("missing file fails validation on required fields", func(t *testing.T) {
		_, err := Initialize(ctx, t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ticketing.base_url")
	})

	t.Run("invalid phase rejected", func(t *testing.T) {
		dir := writeConfig(t, `
phase: yolo
ticketing:
  base_url: https://backend.example
`)
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "phase")
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		dir := writeConfig(t, "phase: [unterminated")
		_, err := Initialize(ctx, dir)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaultConfig()
		cfg.Ticketing.BaseURL = "https://backend.example"
		return cfg
	}

	t.Run("defaults plus base_url pass", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"confidence above one", func(c *Config) { c.ConfidenceThreshold = 1.5 }},
		{"negative poll interval", func(c *Config) { c.PollIntervalSeconds = -1 }},
		{"zero reminder window", func(c *Config) { c.SupplierReminderHours = 0 }},
		{"negative retry cap", func(c *Config) { c.MaxSendRetries = -1 }},
		{"no workers", func(c *Config) { c.Queue.WorkerCount = 0 }},
		{"no job timeout", func(c *Config) { c.Queue.JobTimeout = 0 }},
		{"missing llm model", func(c *Config) { c.LLM.Model = "" }},
		{"empty language override", func(c *Config) { c.LanguageOverrides = map[string]string{"a@b.example": ""} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestBackoffAt(t *testing.T) {
	sched := []time.Duration{time.Minute, 5 * time.Minute, 30 * time.Minute}
	assert.Equal(t, time.Minute, BackoffAt(sched, 0))
	assert.Equal(t, 5*time.Minute, BackoffAt(sched, 1))
	assert.Equal(t, 30*time.Minute, BackoffAt(sched, 2))
	assert.Equal(t, 30*time.Minute, BackoffAt(sched, 10))
	assert.Equal(t, time.Minute, BackoffAt(sched, -3))
	assert.Equal(t, time.Minute, BackoffAt(nil, 4))
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_EXPAND_SECRET", "hunter2")

	out := ExpandEnv([]byte("password: {{.TEST_EXPAND_SECRET}}"))
	assert.Equal(t, "password: hunter2", string(out))

	// Dollar signs survive untouched.
	out = ExpandEnv([]byte(`pattern: ^\d+$`))
	assert.Equal(t, `pattern: ^\d+$`, string(out))

	// Missing variables expand to empty.
	out = ExpandEnv([]byte("value: {{.TEST_EXPAND_DOES_NOT_EXIST}}"))
	assert.Equal(t, "value: ", string(out))
}
