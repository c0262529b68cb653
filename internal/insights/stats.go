// Package insights turns enriched customer data into the final customer
// intelligence report, combining locally computed statistics with
// completion-service narrative generation.
package insights

import (
	"sort"
	"strconv"
	"strings"

	"github.com/brandresponse/brandintel/internal/model"
)

// Columns the structured statistics are computed from.
const (
	ageColumn        = "AGE"
	incomeColumn     = "INCOME_HH"
	educationColumn  = "EDUCATION"
	urbanicityColumn = "URBANICITY"
)

// Marker sets for text-valued columns. A row counts toward a statistic
// when its value contains any marker, case-insensitively.
var (
	highIncomeMarkers = []string{"$100k", "$125k", "$150k", "$200k", "250k"}
	collegeMarkers    = []string{"college", "bachelor", "graduate", "master", "doctora"}
)

// ComputeStats derives the closed-form statistics used by structured mode.
// Each statistic is computed only over rows with a usable value for it;
// missing values shrink the denominator rather than counting as zero, and
// a missing column simply leaves its statistics out.
func ComputeStats(records *model.EnrichedRecordSet) model.RawStats {
	stats := model.RawStats{}
	if records == nil {
		return stats
	}

	ages := numericValues(records.ColumnValues(ageColumn))
	if len(ages) > 0 {
		stats[model.StatAgeMedian] = median(ages)

		var under30, mid, over50 int
		for _, age := range ages {
			switch {
			case age < 30:
				under30++
			case age < 50:
				mid++
			default:
				over50++
			}
		}
		total := float64(len(ages))
		stats[model.StatAgeUnder30Pct] = float64(under30) / total * 100
		stats[model.StatAge30To49Pct] = float64(mid) / total * 100
		stats[model.StatAge50PlusPct] = float64(over50) / total * 100
	}

	if pct, ok := markerPct(records.ColumnValues(incomeColumn), highIncomeMarkers); ok {
		stats[model.StatHighIncomePct] = pct
	}
	if pct, ok := markerPct(records.ColumnValues(educationColumn), collegeMarkers); ok {
		stats[model.StatCollegePct] = pct
	}
	if pct, ok := urbanPct(records.ColumnValues(urbanicityColumn)); ok {
		stats[model.StatUrbanPct] = pct
	}

	return stats
}

// numericValues parses values as numbers, dropping anything unparseable.
func numericValues(values []string) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// median returns the ordinary statistical median, independent of input
// order.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// markerPct returns the percentage of values containing any marker. The
// second return is false when there are no values to measure.
func markerPct(values, markers []string) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	hits := 0
	for _, v := range values {
		lower := strings.ToLower(v)
		for _, m := range markers {
			if strings.Contains(lower, m) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(values)) * 100, true
}

// urbanPct counts values classed as urban. Prefix matching keeps
// "Suburban" from counting as urban.
func urbanPct(values []string) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	hits := 0
	for _, v := range values {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(v)), "urban") {
			hits++
		}
	}
	return float64(hits) / float64(len(values)) * 100, true
}
