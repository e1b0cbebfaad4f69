// Package metrics exposes the Prometheus instrumentation shared across
// the pipeline, dispatcher, and sweeps.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EmailsProcessed counts pipeline outcomes by result:
	// ok, skipped, failed, retryable.
	EmailsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shipdesk",
		Name:      "emails_processed_total",
		Help:      "Inbound e-mails processed by the pipeline, by result.",
	}, []string{"result"})

	// Decisions counts persisted AI decisions by detected intent.
	Decisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shipdesk",
		Name:      "ai_decisions_total",
		Help:      "AI decisions persisted, by intent.",
	}, []string{"intent"})

	// Dispatches counts dispatcher actions by phase and action
	// (queued, sent, escalated, internal_note, send_failed).
	Dispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shipdesk",
		Name:      "dispatches_total",
		Help:      "Dispatcher actions, by phase and action.",
	}, []string{"phase", "action"})

	// PendingTransitions counts approval-queue state transitions.
	PendingTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shipdesk",
		Name:      "pending_message_transitions_total",
		Help:      "Pending message state transitions, by target state.",
	}, []string{"to"})

	// SupplierReminders counts reminder sends from the sweep.
	SupplierReminders = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "shipdesk",
		Name:      "supplier_reminders_total",
		Help:      "Supplier reminders sent by the sweep.",
	})

	// QueueDepth tracks pending ingest jobs as observed by the workers.
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "shipdesk",
		Name:      "ingest_queue_depth",
		Help:      "Pending ingest jobs at last poll.",
	})

	// AnalyzeDuration observes LLM analyze latency.
	AnalyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "shipdesk",
		Name:      "llm_analyze_duration_seconds",
		Help:      "Latency of LLM analyze calls.",
		Buckets:   prometheus.ExponentialBuckets(0.25, 2, 10),
	})
)
