package enrich

import (
	"context"
	"fmt"
	"testing"

	"github.com/brandresponse/brandintel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecords(n int) *model.RecordSet {
	rows := make([]map[string]string, n)
	for i := range rows {
		rows[i] = map[string]string{
			"customer_id": fmt.Sprintf("CUST_%04d", i+1),
			"email":       fmt.Sprintf("c%d@example.com", i+1),
		}
	}
	return &model.RecordSet{Columns: []string{"customer_id", "email"}, Rows: rows}
}

func TestFixtureEnricherAddsColumns(t *testing.T) {
	e := &FixtureEnricher{MatchRate: 1.0}
	vars := []model.VariableRecommendation{
		{Variable: "AGE", Category: model.CategoryDemographics, Rationale: "r"},
		{Variable: "INCOME_HH", Category: model.CategoryEconomic, Rationale: "r"},
		{Variable: "COFFEE_AFFINITY", Category: model.CategoryInterests, Rationale: "r"},
	}

	enriched, err := e.Enrich(context.Background(), makeRecords(50), vars)
	require.NoError(t, err)

	assert.Equal(t, 50, enriched.Len())
	assert.True(t, enriched.HasColumn("AGE"))
	assert.True(t, enriched.HasColumn("INCOME_HH"))
	assert.True(t, enriched.HasColumn("COFFEE_AFFINITY"))

	// Original columns and values survive.
	assert.Equal(t, "CUST_0001", enriched.Rows[0]["customer_id"])
}

func TestFixtureEnricherMatchRate(t *testing.T) {
	e := &FixtureEnricher{MatchRate: 0.96}

	enriched, err := e.Enrich(context.Background(), makeRecords(500), nil)
	require.NoError(t, err)

	assert.Equal(t, 480, enriched.Len())
	assert.Equal(t, 500, enriched.InputCount)
	assert.InDelta(t, 96.0, enriched.MatchRate(), 0.0001)
}

func TestFixtureEnricherDeterministic(t *testing.T) {
	e := &FixtureEnricher{MatchRate: 1.0}
	vars := []model.VariableRecommendation{
		{Variable: "AGE", Rationale: "r"},
		{Variable: "URBANICITY", Rationale: "r"},
	}

	first, err := e.Enrich(context.Background(), makeRecords(100), vars)
	require.NoError(t, err)
	second, err := e.Enrich(context.Background(), makeRecords(100), vars)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
}

func TestFixtureEnricherDuplicateVariables(t *testing.T) {
	e := &FixtureEnricher{MatchRate: 1.0}
	vars := []model.VariableRecommendation{
		{Variable: "AGE", Rationale: "r"},
		{Variable: "AGE", Rationale: "duplicate"},
		{Variable: "email", Rationale: "already a source column"},
	}

	enriched, err := e.Enrich(context.Background(), makeRecords(10), vars)
	require.NoError(t, err)

	ageCols := 0
	for _, c := range enriched.Columns {
		if c == "AGE" {
			ageCols++
		}
	}
	assert.Equal(t, 1, ageCols)
	// The existing email column is not shadowed by a synthesized one.
	assert.Equal(t, "c1@example.com", enriched.Rows[0]["email"])
}

func TestFixtureEnricherEmptyInput(t *testing.T) {
	e := NewFixtureEnricher()
	_, err := e.Enrich(context.Background(), &model.RecordSet{}, nil)
	require.Error(t, err)

	_, err = e.Enrich(context.Background(), nil, nil)
	require.Error(t, err)
}

func TestFixtureEnricherUsesFixtureValues(t *testing.T) {
	e := &FixtureEnricher{
		MatchRate: 1.0,
		Fixture: &model.RecordSet{
			Columns: []string{"AGE"},
			Rows: []map[string]string{
				{"AGE": "30"},
				{"AGE": "40"},
			},
		},
	}

	enriched, err := e.Enrich(context.Background(), makeRecords(4), []model.VariableRecommendation{
		{Variable: "AGE", Rationale: "r"},
	})
	require.NoError(t, err)

	assert.Equal(t, "30", enriched.Rows[0]["AGE"])
	assert.Equal(t, "40", enriched.Rows[1]["AGE"])
	assert.Equal(t, "30", enriched.Rows[2]["AGE"])
}
