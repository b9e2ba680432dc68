// Package audit provides the fire-and-forget audit event sink. Repair runs
// are owner-triggered and need a record of who ran them and what changed;
// nothing in the core ever blocks on, or reads back from, this sink.
package audit

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// Recorder wraps the posthog client so callers do not have to care whether
// the sink is configured.
type Recorder struct {
	client posthog.Client
	logger *slog.Logger
}

// NewRecorder initializes the audit sink. An empty API key yields a no-op
// recorder, which keeps local development and tests quiet.
func NewRecorder(apiKey string, endpoint string, logger *slog.Logger) *Recorder {
	if apiKey == "" {
		logger.Warn("Audit API key is empty, audit events will be dropped.")
		return &Recorder{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize audit client, audit events will be dropped.", slog.String("error", err.Error()))
		return &Recorder{logger: logger}
	}
	return &Recorder{client: client, logger: logger}
}

// Record enqueues one audit event attributed to the acting user. Errors are
// swallowed after logging; audit is best-effort by contract.
func (r *Recorder) Record(actorID, event string, properties map[string]any) {
	if r.logger != nil {
		r.logger.Info("Recording audit event", slog.String("actor_id", actorID), slog.String("event", event), slog.Any("properties", properties))
	}
	if r.client == nil {
		return
	}
	if err := r.client.Enqueue(posthog.Capture{
		DistinctId: actorID,
		Event:      event,
		Properties: properties,
	}); err != nil && r.logger != nil {
		r.logger.Error("Failed to enqueue audit event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes buffered events.
func (r *Recorder) Close() {
	if r.client != nil {
		r.client.Close()
	}
}
