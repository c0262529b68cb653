// Package ingest loads customer record sets from CSV uploads and provides
// the built-in sample dataset.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brandresponse/brandintel/internal/common"
	"github.com/brandresponse/brandintel/internal/model"
)

// ReadCSV parses an uploaded customer CSV into a RecordSet. Parse failures
// come back as user errors so the workflow can show them inline and let
// the user retry.
func ReadCSV(r io.Reader) (*model.RecordSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, common.NewUserError("uploaded file is empty", common.ErrEmptyUpload)
	}
	if err != nil {
		return nil, common.NewUserError("could not read CSV header", fmt.Errorf("%w: %v", common.ErrMalformedCSV, err))
	}

	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, common.NewUserError(
				fmt.Sprintf("could not parse CSV near row %d", len(rows)+2),
				fmt.Errorf("%w: %v", common.ErrMalformedCSV, err))
		}

		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if col == "" || i >= len(record) {
				continue
			}
			if value := strings.TrimSpace(record[i]); value != "" {
				row[col] = value
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, common.NewUserError("uploaded file contains no data rows", common.ErrEmptyUpload)
	}

	return &model.RecordSet{Columns: columns, Rows: rows}, nil
}

// ReadCSVFile reads a customer CSV from disk.
func ReadCSVFile(path string) (*model.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not open %s", path), err)
	}
	defer func() { _ = f.Close() }()
	return ReadCSV(f)
}

// ColumnSummary describes one column of an uploaded record set for the
// post-upload preview.
type ColumnSummary struct {
	Name    string
	NonNull int
	Sample  string
}

// ColumnInfo summarizes each column: non-missing count and a sample value.
func ColumnInfo(rs *model.RecordSet) []ColumnSummary {
	summaries := make([]ColumnSummary, 0, len(rs.Columns))
	for _, col := range rs.Columns {
		summary := ColumnSummary{Name: col, Sample: "N/A"}
		for _, row := range rs.Rows {
			if v, ok := row[col]; ok && v != "" {
				summary.NonNull++
				if summary.Sample == "N/A" {
					summary.Sample = v
				}
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
