package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Load reads a metrics CSV and returns the coerced table. Any decoding
// error halts the load; there is no partial recovery.
func Load(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return Parse(data)
}

// Parse decodes raw CSV bytes into a table with the ten canonical
// columns.
//
// A parse that yields exactly one column means delimiter detection
// failed upstream and each line arrived as a single quoted field. In
// that case every row's sole value is re-split on commas and the fixed
// schema is assigned positionally. The re-split is comma-blind: a field
// that legitimately contains a comma will be corrupted. That fragility
// is part of the contract; do not make this quote-aware.
func Parse(data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("parse csv: empty input")
	}

	if len(rows[0]) == 1 {
		slog.Warn("Input parsed as a single column, applying comma re-split repair")
		return repair(rows), nil
	}

	return fromHeader(rows)
}

// repair rebuilds the table from a degenerate single-column parse.
// Every raw row becomes a data row, including the original header line:
// its cells fail numeric coercion and land as missing values.
func repair(rows [][]string) *Table {
	t := &Table{Repaired: true}
	for _, row := range rows {
		fields := strings.SplitN(row[0], ",", len(Columns))
		for len(fields) < len(Columns) {
			fields = append(fields, "")
		}
		t.Records = append(t.Records, recordFromFields(fields))
	}
	return t
}

func fromHeader(rows [][]string) (*Table, error) {
	header := rows[0]
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	// Columns are resolved by name; extras are ignored, absences are
	// load errors since the table contract promises all ten.
	positions := make([]int, len(Columns))
	for i, name := range Columns {
		pos, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("parse csv: missing column %q", name)
		}
		positions[i] = pos
	}

	t := &Table{}
	fields := make([]string, len(Columns))
	for _, row := range rows[1:] {
		for i, pos := range positions {
			fields[i] = row[pos]
		}
		t.Records = append(t.Records, recordFromFields(fields))
	}
	return t, nil
}
