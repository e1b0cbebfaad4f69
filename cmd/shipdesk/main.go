// Shipdesk triage server: polls the support mailbox, runs the AI triage
// pipeline over a durable job queue, and serves the operator API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shipdesk/shipdesk/pkg/alerts"
	"github.com/shipdesk/shipdesk/pkg/api"
	"github.com/shipdesk/shipdesk/pkg/approval"
	"github.com/shipdesk/shipdesk/pkg/config"
	"github.com/shipdesk/shipdesk/pkg/database"
	"github.com/shipdesk/shipdesk/pkg/dispatch"
	"github.com/shipdesk/shipdesk/pkg/format"
	"github.com/shipdesk/shipdesk/pkg/llm"
	"github.com/shipdesk/shipdesk/pkg/mail"
	"github.com/shipdesk/shipdesk/pkg/pipeline"
	"github.com/shipdesk/shipdesk/pkg/prompt"
	"github.com/shipdesk/shipdesk/pkg/queue"
	"github.com/shipdesk/shipdesk/pkg/sched"
	"github.com/shipdesk/shipdesk/pkg/services"
	"github.com/shipdesk/shipdesk/pkg/supplier"
	"github.com/shipdesk/shipdesk/pkg/ticket"
	"github.com/shipdesk/shipdesk/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting shipdesk",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. External clients
	// Note: grpc.NewClient uses lazy dialing; the connection happens on
	// the first analyze call.
	llmClient, err := llm.NewClient(cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.Addr)

	ticketClient := ticket.NewClient(cfg.Ticketing)
	alertService := alerts.NewService(cfg.Slack)

	// 4. Domain services
	formatter := format.NewFormatter(cfg)
	builder := prompt.NewBuilder(cfg)
	tracker := supplier.New(dbClient, cfg, formatter, ticketClient, alertService)
	dispatcher := dispatch.New(dbClient, cfg, formatter, ticketClient, tracker, alertService)
	pipe := pipeline.New(dbClient, cfg, builder, llmClient, ticketClient, dispatcher, tracker, alertService)
	approvalQueue := approval.New(dbClient, cfg, ticketClient, tracker)
	scheduler := sched.New(dbClient, cfg, approvalQueue, alertService)
	slog.Info("Services initialized", "phase", cfg.Phase)

	// 5. Worker pool
	workerPool := queue.NewPool(dbClient, cfg.Queue, pipe)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 6. Mail poller
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	source, err := mail.NewGmailSource(runCtx, cfg.Gmail)
	if err != nil {
		slog.Warn("Mail source unavailable, running without ingestion", "error", err)
	} else {
		poller := mail.NewPoller(dbClient, source, cfg.PollInterval())
		go poller.Run(runCtx)
	}

	// 7. Periodic sweeps
	go runSweeps(runCtx, cfg.Queue.SweepInterval, tracker, scheduler)

	// 8. HTTP server
	ticketService := services.NewTicketService(dbClient)
	decisionService := services.NewDecisionService(dbClient)
	analyzeService := services.NewAnalyzeService(pipe)
	directoryService := services.NewDirectoryService(dbClient)
	httpServer := api.NewServer(cfg, dbClient, approvalQueue, ticketService, decisionService, analyzeService, directoryService)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Shipdesk started successfully",
		"workers", cfg.Queue.WorkerCount,
		"phase", cfg.Phase)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop intake first, then drain workers, then
	// the HTTP server.
	cancelRun()
	workerPool.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shipdesk stopped")
}

// runSweeps drives the supplier reminder and retry sweeps on one ticker.
func runSweeps(ctx context.Context, interval time.Duration, tracker *supplier.Tracker, scheduler *sched.Scheduler) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if err := tracker.Sweep(ctx); err != nil && ctx.Err() == nil {
			slog.Error("Supplier sweep failed", "error", err)
		}
		if err := scheduler.Sweep(ctx); err != nil && ctx.Err() == nil {
			slog.Error("Retry sweep failed", "error", err)
		}
	}
}
