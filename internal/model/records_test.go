package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueCounts(t *testing.T) {
	rs := &RecordSet{
		Columns: []string{"CITY"},
		Rows: []map[string]string{
			{"CITY": "Seattle"},
			{"CITY": "Portland"},
			{"CITY": "Seattle"},
			{"CITY": "Denver"},
			{"CITY": "Seattle"},
			{"CITY": "Portland"},
			{},
		},
	}

	counts := rs.ValueCounts("CITY", 2)
	assert.Equal(t, []ValueCount{
		{Value: "Seattle", Count: 3},
		{Value: "Portland", Count: 2},
	}, counts)
}

func TestValueCountsTieOrder(t *testing.T) {
	rs := &RecordSet{
		Columns: []string{"STATE"},
		Rows: []map[string]string{
			{"STATE": "WA"},
			{"STATE": "OR"},
			{"STATE": "OR"},
			{"STATE": "WA"},
		},
	}

	// Equal counts keep first-appearance order.
	counts := rs.ValueCounts("STATE", 0)
	assert.Equal(t, []ValueCount{
		{Value: "WA", Count: 2},
		{Value: "OR", Count: 2},
	}, counts)
}

func TestResolveColumnCaseInsensitive(t *testing.T) {
	rs := &RecordSet{Columns: []string{"Age", "email"}}
	assert.Equal(t, "Age", rs.ResolveColumn("AGE"))
	assert.Equal(t, "email", rs.ResolveColumn("Email"))
	assert.Equal(t, "", rs.ResolveColumn("phone"))
}

func TestMatchRate(t *testing.T) {
	tests := []struct {
		name       string
		enriched   int
		inputCount int
		want       float64
	}{
		{name: "partial match", enriched: 480, inputCount: 500, want: 96.0},
		{name: "full match", enriched: 500, inputCount: 500, want: 100.0},
		{name: "more output than input clamps", enriched: 520, inputCount: 500, want: 100.0},
		{name: "zero input", enriched: 0, inputCount: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([]map[string]string, tt.enriched)
			for i := range rows {
				rows[i] = map[string]string{"ID": "x"}
			}
			e := &EnrichedRecordSet{
				RecordSet:  RecordSet{Columns: []string{"ID"}, Rows: rows},
				InputCount: tt.inputCount,
			}
			assert.InDelta(t, tt.want, e.MatchRate(), 0.0001)
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{"demographics", CategoryDemographics},
		{"Demographic", CategoryDemographics},
		{"ECONOMIC", CategoryEconomic},
		{"behavioral", CategoryShopping},
		{"Purchase Behavior", CategoryShopping},
		{"media", CategoryMedia},
		{"", CategoryOther},
		{"made-up label", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCategory(tt.label))
		})
	}
}
