// Package ingest loads time series points from CSV data.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/arloliu/lsts/errs"
	"github.com/arloliu/lsts/point"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (default: first of "ds", "date", "time", "timestamp")
	ValueColumn string // Column name for values (default: first of "y", "value", then the last column)
	IDColumn    string // Column name for series ID (optional, for filtering)
	IDFilter    string // Value to filter by ID column
	DateFormat  string // Date layout tried before the generic layouts (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: time.DateOnly,
		HasHeader:  true,
		Delimiter:  ',',
	}
}

// LoadCSV loads time points from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) ([]point.TimePoint, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads time points from r.
//
// Rows with a missing or non-numeric value ("", "NA", "NaN", "null") are
// skipped. Rows whose date cannot be parsed fail the load.
//
// Parameters:
//   - r: CSV source
//   - opts: Loading options, DefaultCSVOptions() when nil
//
// Returns:
//   - []point.TimePoint: Points in file order
//   - error: ErrMissingColumn for an unknown named column, ErrNoData when no
//     row holds a value, or a CSV or date parsing error
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) ([]point.TimePoint, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for range opts.SkipRows {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	cols := columns{date: 0, value: 1, id: -1}
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		if cols, err = findColumns(header, opts); err != nil {
			return nil, err
		}
	}

	var points []point.TimePoint
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if opts.IDFilter != "" && cols.id >= 0 && field(record, cols.id) != opts.IDFilter {
			continue
		}

		value, ok := parseValue(field(record, cols.value))
		if !ok {
			continue
		}
		ts, err := parseTime(field(record, cols.date), opts.DateFormat)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		points = append(points, point.TimePoint{X: ts, Y: value})
	}

	if len(points) == 0 {
		return nil, errs.ErrNoData
	}

	return points, nil
}

type columns struct {
	date, value, id int
}

func findColumns(header []string, opts *CSVOptions) (columns, error) {
	cols := columns{date: -1, value: -1, id: -1}
	for i, h := range header {
		h = clean(h)
		switch {
		case opts.ValueColumn != "" && h == opts.ValueColumn:
			cols.value = i
		case opts.ValueColumn == "" && cols.value == -1 && isOneOf(h, "y", "value"):
			cols.value = i
		case opts.DateColumn != "" && h == opts.DateColumn:
			cols.date = i
		case opts.DateColumn == "" && cols.date == -1 && isOneOf(h, "ds", "date", "time", "timestamp"):
			cols.date = i
		case opts.IDColumn != "" && h == opts.IDColumn:
			cols.id = i
		}
	}

	switch {
	case cols.value == -1 && opts.ValueColumn != "":
		return cols, fmt.Errorf("%w: %q", errs.ErrMissingColumn, opts.ValueColumn)
	case cols.value == -1:
		cols.value = len(header) - 1
	}
	if cols.date == -1 {
		name := opts.DateColumn
		if name == "" {
			name = "date"
		}

		return cols, fmt.Errorf("%w: %q", errs.ErrMissingColumn, name)
	}
	if opts.IDColumn != "" && cols.id == -1 {
		return cols, fmt.Errorf("%w: %q", errs.ErrMissingColumn, opts.IDColumn)
	}

	return cols, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}

	return clean(record[i])
}

func clean(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func isOneOf(s string, names ...string) bool {
	for _, n := range names {
		if strings.EqualFold(s, n) {
			return true
		}
	}

	return false
}

func parseValue(s string) (float64, bool) {
	if s == "" || isOneOf(s, "NA", "NaN", "null") {
		return 0, false
	}
	v, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, false
	}

	return v, true
}

// parseTime tries layout first, then Unix seconds, then the layouts known to cast.
func parseTime(s, layout string) (time.Time, error) {
	if layout != "" {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts, nil
		}
	}
	if sec, err := cast.ToInt64E(s); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}

	return cast.ToTimeE(s)
}
