package selector

import (
	"testing"

	"github.com/brandresponse/brandintel/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkdownTable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []model.VariableRecommendation
		wantErr bool
	}{
		{
			name: "well formed table",
			input: `Here are my recommendations:

| Variable | Category | Strategic Rationale |
|----------|----------|-------------------|
| AGE | demographics | Reveals the real age spread of buyers |
| INCOME_HH | economic | Pricing headroom for premium offers |
| COFFEE_AFFINITY | interests | Direct category relevance |`,
			want: []model.VariableRecommendation{
				{Variable: "AGE", Category: model.CategoryDemographics, Rationale: "Reveals the real age spread of buyers"},
				{Variable: "INCOME_HH", Category: model.CategoryEconomic, Rationale: "Pricing headroom for premium offers"},
				{Variable: "COFFEE_AFFINITY", Category: model.CategoryInterests, Rationale: "Direct category relevance"},
			},
		},
		{
			name: "malformed rows are skipped, order preserved",
			input: `| Variable | Category | Strategic Rationale |
| --- | --- | --- |
| AGE | demographics | First |
not a table line at all
| MISSING_RATIONALE | economic | |
| | economic | no variable |
| URBANICITY | lifestyle | Second |
too|few
| EDUCATION | lifestyle | Third |`,
			want: []model.VariableRecommendation{
				{Variable: "AGE", Category: model.CategoryDemographics, Rationale: "First"},
				{Variable: "URBANICITY", Category: model.CategoryLifestyle, Rationale: "Second"},
				{Variable: "EDUCATION", Category: model.CategoryLifestyle, Rationale: "Third"},
			},
		},
		{
			name: "rows before the header are ignored",
			input: `| SNEAKY | demographics | should not count |
| Variable | Category | Strategic Rationale |
| AGE | demographics | counts |`,
			want: []model.VariableRecommendation{
				{Variable: "AGE", Category: model.CategoryDemographics, Rationale: "counts"},
			},
		},
		{
			name: "unrecognized category becomes other",
			input: `| Variable | Category | Strategic Rationale |
| MYSTERY | psychographic vibes | still useful |`,
			want: []model.VariableRecommendation{
				{Variable: "MYSTERY", Category: model.CategoryOther, Rationale: "still useful"},
			},
		},
		{
			name: "behavioral category normalizes to shopping",
			input: `| Variable | Category | Strategic Rationale |
| ONLINE_PURCHASES | behavioral | Channel preference signal |`,
			want: []model.VariableRecommendation{
				{Variable: "ONLINE_PURCHASES", Category: model.CategoryShopping, Rationale: "Channel preference signal"},
			},
		},
		{
			name: "bold variable names are unwrapped",
			input: `| Variable | Category | Strategic Rationale |
| **AGE** | demographics | formatting survives |`,
			want: []model.VariableRecommendation{
				{Variable: "AGE", Category: model.CategoryDemographics, Rationale: "formatting survives"},
			},
		},
		{
			name:    "no header means no rows",
			input:   "| AGE | demographics | orphan row |",
			wantErr: true,
		},
		{
			name:    "prose only",
			input:   "I could not produce a table, sorry.",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecommendations(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var parseErr *ParseError
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJSONSelection(t *testing.T) {
	input := "```json\n" + `{
  "selected_variables": [
    {"variable": "AGE", "category": "demographics", "rationale": "Age spread"},
    {"variable": "NET_WORTH_HH", "category": "economic", "rationale": "Wealth signal"},
    {"variable": "WILDCARD", "rationale": "No category given"}
  ]
}` + "\n```"

	got, err := ParseRecommendations(input)
	require.NoError(t, err)

	assert.Equal(t, []model.VariableRecommendation{
		{Variable: "AGE", Category: model.CategoryDemographics, Rationale: "Age spread"},
		{Variable: "NET_WORTH_HH", Category: model.CategoryEconomic, Rationale: "Wealth signal"},
		{Variable: "WILDCARD", Category: model.CategoryOther, Rationale: "No category given"},
	}, got)
}

func TestParseJSONSelectionShapeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "{this is not json"},
		{name: "empty array", input: `{"selected_variables": []}`},
		{name: "wrong key", input: `{"variables": [{"variable": "AGE", "rationale": "x"}]}`},
		{name: "entry missing rationale", input: `{"selected_variables": [{"variable": "AGE"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecommendations(tt.input)
			require.Error(t, err)
			var parseErr *ParseError
			assert.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestStripFence(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, stripFence("```json\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripFence("```\n{\"a\": 1}\n```"))
	assert.Equal(t, `{"a": 1}`, stripFence(`{"a": 1}`))
}
