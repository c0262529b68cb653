package model

import (
	"sort"
	"strings"
)

// RecordSet is an ordered collection of customer rows. Each row maps a
// column name to a scalar value; a key absent from the row means the value
// is missing. No schema is required beyond some identifying column.
type RecordSet struct {
	Columns []string
	Rows    []map[string]string
}

// Len returns the number of rows.
func (r *RecordSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// HasColumn reports whether the named column exists, ignoring case.
func (r *RecordSet) HasColumn(name string) bool {
	return r.ResolveColumn(name) != ""
}

// ResolveColumn returns the stored column name matching the given name
// case-insensitively, or "" if no column matches.
func (r *RecordSet) ResolveColumn(name string) string {
	if r == nil {
		return ""
	}
	for _, col := range r.Columns {
		if strings.EqualFold(col, name) {
			return col
		}
	}
	return ""
}

// ColumnValues returns the non-missing values of a column in row order.
func (r *RecordSet) ColumnValues(name string) []string {
	col := r.ResolveColumn(name)
	if col == "" {
		return nil
	}
	values := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		if v, ok := row[col]; ok && strings.TrimSpace(v) != "" {
			values = append(values, v)
		}
	}
	return values
}

// ValueCount is one distinct value of a column and its frequency.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts returns the topN most frequent values of a column. Ties are
// broken by first appearance so the result is stable across runs.
func (r *RecordSet) ValueCounts(name string, topN int) []ValueCount {
	values := r.ColumnValues(name)
	if len(values) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, v := range values {
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}

	result := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		result = append(result, ValueCount{Value: v, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return firstSeen[result[i].Value] < firstSeen[result[j].Value]
	})

	if topN > 0 && len(result) > topN {
		result = result[:topN]
	}
	return result
}

// EnrichedRecordSet is a RecordSet extended with enrichment attribute
// columns. Its row cardinality may differ from the input set when the
// identity graph fails to match some records.
type EnrichedRecordSet struct {
	RecordSet
	InputCount int
}

// MatchRate returns the share of input rows that were enriched, as a
// percentage clamped to 100.
func (e *EnrichedRecordSet) MatchRate() float64 {
	if e == nil || e.InputCount == 0 {
		return 0
	}
	rate := float64(e.Len()) / float64(e.InputCount) * 100
	if rate > 100 {
		rate = 100
	}
	return rate
}
