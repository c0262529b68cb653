package model

import "time"

// EventType identifies one kind of workflow event.
type EventType string

// Known workflow event types. Each has an error variant produced by
// ErrVariant.
const (
	EventSessionStart       EventType = "session_start"
	EventDataUpload         EventType = "data_upload"
	EventBusinessContext    EventType = "business_context_captured"
	EventVariableSelection  EventType = "ai_variable_selection"
	EventEnrichmentComplete EventType = "data_enrichment_complete"
	EventInsightsGenerated  EventType = "insights_generated"
	EventReportExported     EventType = "report_exported"
	EventSessionCompleted   EventType = "session_completed"
	EventAnalysisRefinement EventType = "analysis_refinement"
	EventWorkflowSummary    EventType = "workflow_summary_generated"
)

// ErrVariant returns the error variant of an event type, logged when the
// corresponding action failed.
func (t EventType) ErrVariant() EventType {
	return t + "_error"
}

// SessionEvent is one append-only record in a session's event log. Entries
// are self-contained; Details is an open mapping.
type SessionEvent struct {
	Timestamp time.Time      `json:"timestamp"`
	Type      EventType      `json:"event"`
	Details   map[string]any `json:"details,omitempty"`
}

// DetailInt reads an integer detail, tolerating the float64 values that
// JSON round-trips produce.
func (e SessionEvent) DetailInt(key string) int {
	switch v := e.Details[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// DetailString reads a string detail, returning fallback when absent.
func (e SessionEvent) DetailString(key, fallback string) string {
	if v, ok := e.Details[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
