package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Workflow steps, in order. The step machine only ever holds one of these.
const (
	StepUploadData        = 1
	StepBusinessContext   = 2
	StepVariableSelection = 3
	StepEnrichment        = 4
	StepInsights          = 5
	StepExport            = 6

	StepCount = 6
)

// StepName returns the display name for a workflow step.
func StepName(step int) string {
	switch step {
	case StepUploadData:
		return "Upload Client Data"
	case StepBusinessContext:
		return "Business Context"
	case StepVariableSelection:
		return "AI Variable Selection"
	case StepEnrichment:
		return "Data Enrichment"
	case StepInsights:
		return "Generate Insights"
	case StepExport:
		return "Export Report"
	default:
		return fmt.Sprintf("Step %d", step)
	}
}

// Session aggregates all state for one end-to-end workflow run. Exactly one
// session is live per user; a reset destroys it and constructs a fresh one
// with a new identity.
type Session struct {
	ID              string
	Step            int
	Context         *BusinessContext
	Records         *RecordSet
	Recommendations []VariableRecommendation
	Enriched        *EnrichedRecordSet
	Report          *InsightReport
	StartedAt       time.Time
}

// NewSession creates a session with a timestamp-derived identity. A short
// random suffix keeps two sessions started in the same second distinct.
func NewSession() *Session {
	now := time.Now()
	id := fmt.Sprintf("%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8])
	return NewSessionWithID(id)
}

// NewSessionWithID creates a session with an externally supplied identity.
func NewSessionWithID(id string) *Session {
	return &Session{
		ID:        id,
		Step:      StepUploadData,
		StartedAt: time.Now(),
	}
}
