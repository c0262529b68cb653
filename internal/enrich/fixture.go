package enrich

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/brandresponse/brandintel/internal/common"
	"github.com/brandresponse/brandintel/internal/model"
)

// DefaultMatchRate approximates a typical identity-graph match rate.
const DefaultMatchRate = 0.96

// FixtureEnricher simulates the identity-graph vendor. Attribute values
// are synthesized deterministically from the row identity and attribute
// name, so repeated runs over the same input produce identical output.
type FixtureEnricher struct {
	// MatchRate is the fraction of input rows that enrich; rows beyond it
	// are dropped from the output, mirroring unmatched identities.
	MatchRate float64
	// Fixture, when set, supplies attribute values by column name instead
	// of synthesis; values are taken row-by-row, cycling as needed.
	Fixture *model.RecordSet
}

// NewFixtureEnricher creates a simulator with the default match rate.
func NewFixtureEnricher() *FixtureEnricher {
	return &FixtureEnricher{MatchRate: DefaultMatchRate}
}

// Enrich implements Enricher.
func (f *FixtureEnricher) Enrich(_ context.Context, records *model.RecordSet, vars []model.VariableRecommendation) (*model.EnrichedRecordSet, error) {
	if records == nil || records.Len() == 0 {
		return nil, common.NewUserError("no customer records to enrich", common.ErrEnrichmentFailed)
	}

	rate := f.MatchRate
	if rate <= 0 || rate > 1 {
		rate = DefaultMatchRate
	}
	matched := int(float64(records.Len()) * rate)
	if matched == 0 {
		matched = 1
	}

	columns := make([]string, len(records.Columns))
	copy(columns, records.Columns)
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		seen[strings.ToUpper(c)] = true
	}
	var added []string
	for _, v := range vars {
		name := strings.ToUpper(strings.TrimSpace(v.Variable))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		added = append(added, name)
		columns = append(columns, name)
	}

	rows := make([]map[string]string, 0, matched)
	for i := 0; i < matched; i++ {
		src := records.Rows[i]
		row := make(map[string]string, len(src)+len(added))
		for k, v := range src {
			row[k] = v
		}
		for _, attr := range added {
			if f.Fixture != nil {
				if v := f.fixtureValue(attr, i); v != "" {
					row[attr] = v
					continue
				}
			}
			row[attr] = syntheticValue(attr, rowKey(src, i))
		}
		rows = append(rows, row)
	}

	return &model.EnrichedRecordSet{
		RecordSet:  model.RecordSet{Columns: columns, Rows: rows},
		InputCount: records.Len(),
	}, nil
}

// fixtureValue reads an attribute value from the fixture file, cycling
// through its rows.
func (f *FixtureEnricher) fixtureValue(attr string, rowIdx int) string {
	col := f.Fixture.ResolveColumn(attr)
	if col == "" || f.Fixture.Len() == 0 {
		return ""
	}
	return f.Fixture.Rows[rowIdx%f.Fixture.Len()][col]
}

// rowKey derives a stable identity for a row, preferring an explicit
// identifier column over the row position.
func rowKey(row map[string]string, idx int) string {
	for _, col := range []string{"customer_id", "CUSTOMER_ID", "id", "ID", "email", "EMAIL"} {
		if v, ok := row[col]; ok && v != "" {
			return v
		}
	}
	return fmt.Sprintf("row-%d", idx)
}

// Value pools for synthesized attributes. Pools are chosen by attribute
// name, falling back to a generic score pool.
var (
	agePool        = []string{"24", "29", "33", "37", "41", "45", "48", "52", "56", "61", "67"}
	incomePool     = []string{"Under $35K", "$35K-$50K", "$50K-$75K", "$75K-$100K", "$100K-$150K", "$150K+"}
	educationPool  = []string{"High School", "Some College", "College", "Graduate Degree"}
	urbanicityPool = []string{"Urban", "Suburban", "Rural"}
	maritalPool    = []string{"Married", "Single", "Divorced", "Widowed"}
	childrenPool   = []string{"0", "1", "2", "3"}
	occupationPool = []string{"White Collar", "Blue Collar", "Professional", "Retired"}
	affinityPool   = []string{"Very High", "High", "Moderate", "Low"}
	yesNoPool      = []string{"Yes", "No"}
	scorePool      = []string{"A", "B", "C", "D"}
)

// syntheticValue picks a deterministic value for an attribute given the
// row identity.
func syntheticValue(attr, key string) string {
	pool := poolFor(attr)
	h := fnv.New32a()
	_, _ = h.Write([]byte(attr))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(key))
	return pool[int(h.Sum32())%len(pool)]
}

func poolFor(attr string) []string {
	lower := strings.ToLower(attr)
	switch {
	case lower == "age" || strings.HasPrefix(lower, "age_"):
		return agePool
	case strings.Contains(lower, "income") || strings.Contains(lower, "net_worth"):
		return incomePool
	case strings.Contains(lower, "education"):
		return educationPool
	case strings.Contains(lower, "urbanicity"):
		return urbanicityPool
	case strings.Contains(lower, "marital"):
		return maritalPool
	case strings.Contains(lower, "children"):
		return childrenPool
	case strings.Contains(lower, "occupation"):
		return occupationPool
	case strings.Contains(lower, "affinity") || strings.Contains(lower, "interest"):
		return affinityPool
	case strings.Contains(lower, "purchase") || strings.Contains(lower, "reading") ||
		strings.Contains(lower, "shopper") || strings.Contains(lower, "owner") ||
		strings.Contains(lower, "holder"):
		return yesNoPool
	default:
		return scorePool
	}
}
