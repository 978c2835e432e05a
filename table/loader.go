package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// missing marks the field values that load as NaN in numeric columns.
func missing(field string) bool {
	switch field {
	case "", "NA", "NaN", "nan", "null":
		return true
	}
	return false
}

// Load reads a comma separated file with one header row into a Table.
// Files ending in .gz are decompressed on the fly. I/O and parse errors are
// returned to the caller as-is, wrapped with the path; there is no retry.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", path, err)
		}
		defer gz.Close()
		r = gz
	}

	t, err := LoadReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	return t, nil
}

// LoadReader reads comma separated data with one header row into a Table.
// The header fields name the columns. A column is numeric when every one of
// its fields is a float literal or a missing-value marker (empty, NA, NaN,
// nan, null); markers load as NaN. Any other field makes the whole column a
// string column. Rows with a deviating field count fail the load.
func LoadReader(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header := records[0]
	rows := records[1:]

	cols := make([]Column, len(header))
	for j, name := range header {
		cols[j] = buildColumn(strings.TrimSpace(name), rows, j)
	}
	return New(cols...)
}

// buildColumn types and converts field j of every row.
func buildColumn(name string, rows [][]string, j int) Column {
	numeric := true
	for _, row := range rows {
		field := strings.TrimSpace(row[j])
		if missing(field) {
			continue
		}
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			numeric = false
			break
		}
	}

	if !numeric {
		vals := make([]string, len(rows))
		for i, row := range rows {
			vals[i] = strings.TrimSpace(row[j])
		}
		return Column{Name: name, Kind: KindString, Strings: vals}
	}

	vals := make([]float64, len(rows))
	for i, row := range rows {
		field := strings.TrimSpace(row[j])
		if missing(field) {
			vals[i] = math.NaN()
			continue
		}
		// can't fail, the detection pass parsed it already
		vals[i], _ = strconv.ParseFloat(field, 64)
	}
	return Column{Name: name, Kind: KindFloat, Floats: vals}
}
