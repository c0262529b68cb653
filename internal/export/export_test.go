package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/brandresponse/brandintel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportSession() *model.Session {
	session := model.NewSessionWithID("20250101_120000_deadbeef")
	session.Context = &model.BusinessContext{
		BusinessName: "Mountain Peak Coffee",
		Industry:     "Food & Beverage",
	}
	session.Recommendations = []model.VariableRecommendation{
		{Variable: "AGE", Category: model.CategoryDemographics, Rationale: "Core demographic for targeting"},
		{Variable: "INCOME_HH", Category: model.CategoryEconomic, Rationale: "Purchasing power"},
	}
	session.Report = &model.InsightReport{
		NarrativeText:     "## Summary\n\nCustomers skew **urban** and `affluent`.",
		VariablesAnalyzed: 2,
		RecordsAnalyzed:   480,
		RawStats:          model.RawStats{model.StatAgeMedian: 41},
		GeneratedAt:       time.Date(2025, 1, 1, 12, 30, 0, 0, time.UTC),
	}
	return session
}

func TestTextReport(t *testing.T) {
	text := Text(exportSession())

	assert.Contains(t, text, "BRAND RESPONSE | CUSTOMER INTELLIGENCE REPORT")
	assert.Contains(t, text, "Business: Mountain Peak Coffee")
	assert.Contains(t, text, "Analysis Date: January 1, 2025")
	assert.Contains(t, text, "AGE (demographics): Core demographic for targeting")
	assert.Contains(t, text, "Records analyzed: 480")
	assert.Contains(t, text, "Generated by the Brand Response Customer Intelligence Platform")

	// Markdown markers are stripped from the narrative.
	assert.Contains(t, text, "Customers skew urban and affluent.")
	assert.NotContains(t, text, "##")
	assert.NotContains(t, text, "**")
}

func TestTextReportPartialSession(t *testing.T) {
	session := model.NewSessionWithID("20250101_120000_deadbeef")

	text := Text(session)
	assert.True(t, strings.HasPrefix(text, bannerRule))
	assert.NotContains(t, text, "SELECTED VARIABLES")
	assert.NotContains(t, text, "CUSTOMER INTELLIGENCE\n")
}

func TestJSONReport(t *testing.T) {
	data, err := JSON(exportSession())
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"business_context", "selected_variables", "insights", "analysis_date"} {
		assert.Contains(t, doc, key)
	}

	var round Document
	require.NoError(t, json.Unmarshal(data, &round))
	assert.Equal(t, "Mountain Peak Coffee", round.BusinessContext.BusinessName)
	require.Len(t, round.SelectedVariables, 2)
	assert.Equal(t, "INCOME_HH", round.SelectedVariables[1].Variable)
	require.NotNil(t, round.Insights)
	assert.Equal(t, 480, round.Insights.RecordsAnalyzed)
	assert.Equal(t, round.Insights.GeneratedAt, round.AnalysisDate)
}
