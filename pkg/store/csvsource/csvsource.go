// Package csvsource reads the ensemble and observational inputs from
// CSV files into raw store rows. The files are expected to be cleaned
// upstream: usable years, no duplicate (model, year) pairs.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/de-tools/trend-atlas/pkg/models/store"
)

// ReadEnsemble parses long-format rows of model,year,value. A header
// row is detected by a non-numeric year field and skipped.
func ReadEnsemble(r io.Reader) ([]store.EnsembleRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	var rows []store.EnsembleRow
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ensemble csv: %w", err)
		}
		line++
		if len(record) != 3 {
			return nil, fmt.Errorf("ensemble csv line %d: want 3 fields, got %d", line, len(record))
		}

		year, err := strconv.Atoi(record[1])
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("ensemble csv line %d: bad year %q", line, record[1])
		}
		value, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("ensemble csv line %d: bad value %q", line, record[2])
		}
		rows = append(rows, store.EnsembleRow{Model: record[0], Year: year, Value: value})
	}
	return rows, nil
}

// ReadEnsembleFile is ReadEnsemble over a file path.
func ReadEnsembleFile(path string) ([]store.EnsembleRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ensemble csv: %w", err)
	}
	defer f.Close()
	return ReadEnsemble(f)
}

// ReadObserved parses observational rows. Each data row is a year
// followed by either one annual value or twelve monthly values; the
// shape is detected from the field count and must be consistent
// across the file. A header row is detected and skipped like in
// ReadEnsemble.
func ReadObserved(r io.Reader) ([]store.ObservedRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var rows []store.ObservedRow
	line := 0
	fields := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading observed csv: %w", err)
		}
		line++
		if len(record) != 2 && len(record) != 13 {
			return nil, fmt.Errorf("observed csv line %d: want year+1 or year+12 fields, got %d", line, len(record))
		}

		year, err := strconv.Atoi(record[0])
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("observed csv line %d: bad year %q", line, record[0])
		}
		if fields == 0 {
			fields = len(record)
		} else if len(record) != fields {
			return nil, fmt.Errorf("observed csv line %d: inconsistent field count %d, want %d", line, len(record), fields)
		}

		values := make([]float64, 0, len(record)-1)
		for _, raw := range record[1:] {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("observed csv line %d: bad value %q", line, raw)
			}
			values = append(values, v)
		}
		rows = append(rows, store.ObservedRow{Year: year, Values: values})
	}
	return rows, nil
}

// ReadObservedFile is ReadObserved over a file path.
func ReadObservedFile(path string) ([]store.ObservedRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening observed csv: %w", err)
	}
	defer f.Close()
	return ReadObserved(f)
}
