// Package csvfile reads the tabular dataset from CSV, either from a local
// file or from any io.Reader handed over by another source.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ewilliams-labs/artistscope/internal/core/domain"
)

// ErrMissingColumn means the header lacks a required column.
var ErrMissingColumn = errors.New("csvfile: missing required column")

// Parse reads a header line followed by data rows. Known columns are mapped
// onto domain.TrackRow, unknown ones are ignored and absent optional ones
// stay empty. Rows with too few fields are padded, extra fields dropped.
func Parse(r io.Reader) ([]domain.TrackRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("csvfile: empty input")
		}
		return nil, fmt.Errorf("csvfile: read header: %w", err)
	}

	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		columns[i] = name
		seen[name] = true
	}
	for _, required := range domain.RequiredColumns {
		if !seen[required] {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, required)
		}
	}

	var rows []domain.TrackRow
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("csvfile: line %d: %w", line, err)
		}

		var row domain.TrackRow
		for i, val := range record {
			if i >= len(columns) {
				break
			}
			row.SetField(columns[i], val)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
