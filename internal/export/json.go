package export

import (
	"encoding/json"
	"time"

	"github.com/brandresponse/brandintel/internal/model"
)

// Document is the JSON export schema.
type Document struct {
	BusinessContext   model.BusinessContext          `json:"business_context"`
	SelectedVariables []model.VariableRecommendation `json:"selected_variables"`
	Insights          *model.InsightReport           `json:"insights"`
	AnalysisDate      time.Time                      `json:"analysis_date"`
}

// JSON renders the session as an indented JSON document.
func JSON(session *model.Session) ([]byte, error) {
	doc := Document{
		SelectedVariables: session.Recommendations,
		Insights:          session.Report,
		AnalysisDate:      reportDate(session),
	}
	if session.Context != nil {
		doc.BusinessContext = *session.Context
	}
	return json.MarshalIndent(doc, "", "  ")
}
