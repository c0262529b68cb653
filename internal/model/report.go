package model

import "time"

// RawStats holds the closed-form statistics computed locally before any
// completion-service call. A key is present only when its statistic could
// be computed from the available columns.
type RawStats map[string]float64

// Stat keys produced by the insight generator's structured mode.
const (
	StatAgeMedian     = "age_median"
	StatAgeUnder30Pct = "age_under_30_pct"
	StatAge30To49Pct  = "age_30_49_pct"
	StatAge50PlusPct  = "age_50_plus_pct"
	StatHighIncomePct = "high_income_pct"
	StatCollegePct    = "college_plus_pct"
	StatUrbanPct      = "urban_pct"
)

// Segment is one customer segment identified by structured insights.
type Segment struct {
	Percentage float64 `json:"percentage"`
	Profile    string  `json:"profile"`
}

// StructuredInsights is the schema the completion service is asked to fill
// in structured mode.
type StructuredInsights struct {
	ExecutiveSummary     string             `json:"executive_summary"`
	KeyFindings          []string           `json:"key_findings"`
	DemographicSurprises []string           `json:"demographic_surprises"`
	Segments             map[string]Segment `json:"segments"`
	Recommendations      []string           `json:"recommendations"`
}

// InsightReport is the final customer intelligence deliverable for one
// session. It is produced once at the insights step and never mutated.
type InsightReport struct {
	NarrativeText     string              `json:"narrative_text"`
	VariablesAnalyzed int                 `json:"variables_analyzed"`
	RecordsAnalyzed   int                 `json:"records_analyzed"`
	RawStats          RawStats            `json:"raw_stats,omitempty"`
	Structured        *StructuredInsights `json:"structured,omitempty"`
	GeneratedAt       time.Time           `json:"generated_at"`
}
