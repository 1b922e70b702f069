package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/fieldparse"
	"github.com/jonathan/resume-builder/internal/types"
)

// Field-session stream events
const (
	EventField    = "field"
	EventError    = "error"
	EventComplete = "complete"
)

// SSEWriter writes Server-Sent Events for a field-session stream
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter sets the event-stream headers on w
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends data as the JSON payload of one event and flushes it
func (s *SSEWriter) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteField sends the snapshot after a step
func (s *SSEWriter) WriteField(snap fieldparse.Snapshot) error {
	return s.WriteEvent(EventField, snap)
}

// WriteError reports a failed step. field is empty when the stream itself failed.
func (s *SSEWriter) WriteError(field, message string) {
	_ = s.WriteEvent(EventError, map[string]string{"field": field, "error": message})
}

// WriteComplete sends the finished record
func (s *SSEWriter) WriteComplete(id string, record types.ResumeRecord) {
	_ = s.WriteEvent(EventComplete, map[string]any{"id": id, "record": record})
}
