package counts

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMissingColumn is returned when a required column is absent from the header.
var ErrMissingColumn = errors.New("required column not found")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	NameColumn  string // Column with a label for each measurement (optional)
	NColumn     string // Observed counts (default: "n")
	BColumn     string // Background or off-source counts (default: "b")
	AlphaColumn string // Efficiency ratio (default: "alpha", missing = 1)
	SigmaColumn string // Gaussian uncertainty (default: "sigma", missing = 0)
	KColumn     string // Bounded systematic (default: "k", missing = 0)
	IDColumn    string // Column name to filter on (optional)
	IDFilter    string // Value to filter by ID column
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		NameColumn:  "name",
		NColumn:     "n",
		BColumn:     "b",
		AlphaColumn: "alpha",
		SigmaColumn: "sigma",
		KColumn:     "k",
		Delimiter:   ',',
	}
}

// LoadCSV loads a measurement table from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a measurement table from an io.Reader. The first
// row (after SkipRows) must be a header.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[cleanField(h)] = i
	}
	col := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := index[name]; ok {
			return i
		}
		return -1
	}

	nIdx, bIdx := col(opts.NColumn), col(opts.BColumn)
	if nIdx < 0 {
		return nil, fmt.Errorf("column %q: %w", opts.NColumn, ErrMissingColumn)
	}
	if bIdx < 0 {
		return nil, fmt.Errorf("column %q: %w", opts.BColumn, ErrMissingColumn)
	}
	nameIdx := col(opts.NameColumn)
	alphaIdx := col(opts.AlphaColumn)
	sigmaIdx := col(opts.SigmaColumn)
	kIdx := col(opts.KColumn)
	idIdx := col(opts.IDColumn)

	table := &Table{}
	line := 1 + opts.SkipRows

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if opts.IDFilter != "" && idIdx >= 0 && idIdx < len(record) {
			if cleanField(record[idIdx]) != opts.IDFilter {
				continue
			}
		}

		m := Measurement{Alpha: 1}
		if m.N, err = parseRequired(record, nIdx); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, opts.NColumn, err)
		}
		if m.B, err = parseRequired(record, bIdx); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, opts.BColumn, err)
		}
		if m.Alpha, err = parseField(record, alphaIdx, 1); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, opts.AlphaColumn, err)
		}
		if m.Sigma, err = parseField(record, sigmaIdx, 0); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, opts.SigmaColumn, err)
		}
		if m.K, err = parseField(record, kIdx, 0); err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, opts.KColumn, err)
		}
		if nameIdx >= 0 && nameIdx < len(record) {
			m.Name = cleanField(record[nameIdx])
		}

		table.Append(m)
	}

	if table.Len() == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return table, nil
}

// SaveCSV writes a table to a CSV file using the default column names.
func SaveCSV(table *Table, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := WriteCSV(writer, table); err != nil {
		return err
	}
	return writer.Flush()
}

// WriteCSV writes a table with a header row to w.
func WriteCSV(w io.Writer, table *Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "n", "b", "alpha", "sigma", "k"}); err != nil {
		return err
	}

	format := func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	for i := 0; i < table.Len(); i++ {
		m := table.Row(i)
		record := []string{m.Name, format(m.N), format(m.B), format(m.Alpha), format(m.Sigma), format(m.K)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

// parseField parses column idx of record. Missing columns and empty cells
// take the fallback value.
func parseField(record []string, idx int, fallback float64) (float64, error) {
	if idx < 0 || idx >= len(record) {
		return fallback, nil
	}
	s := cleanField(record[idx])
	if s == "" || s == "NA" {
		return fallback, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseRequired(record []string, idx int) (float64, error) {
	if idx >= len(record) || cleanField(record[idx]) == "" {
		return 0, errors.New("empty value")
	}
	return parseField(record, idx, 0)
}
