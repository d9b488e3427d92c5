// Package input reads the supported batch formats (CSV, JSONL, JSON
// array, Parquet) into fully materialized record or row slices. No
// streaming: every source here is a small finite export.
package input

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"sales-data-lab/internal/record"
)

// ErrMalformedInput marks a structurally broken source file, e.g. a JSONL
// line that is not an object.
var ErrMalformedInput = errors.New("malformed input")

// ReadCSV reads a header-keyed CSV file. Every value stays a string; the
// caller coerces through record helpers or a typed converter.
func ReadCSV(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	if len(rows) == 0 {
		return make([]record.Record, 0), nil
	}

	header := rows[0]
	records := make([]record.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(record.Record, len(header))
		for i, key := range header {
			if i < len(row) {
				rec[strings.TrimSpace(key)] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadJSONL reads one JSON object per line. Blank lines are skipped; a
// non-object line is a fatal input error.
func ReadJSONL(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open jsonl %s: %w", path, err)
	}
	defer f.Close()

	records := make([]record.Record, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec record.Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("%w: %s line %d is not a JSON object", ErrMalformedInput, path, lineNo)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read jsonl %s: %w", path, err)
	}
	return records, nil
}

// ReadJSONArray reads a top-level JSON array of objects.
func ReadJSONArray(path string) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open json %s: %w", path, err)
	}
	var records []record.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s is not a JSON array of objects", ErrMalformedInput, path)
	}
	if records == nil {
		records = make([]record.Record, 0)
	}
	return records, nil
}
