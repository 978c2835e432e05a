// Package table implements the typed, in-memory observation tables that all
// lightcurve processing operates on: ordered, named columns of equal length,
// validated at construction so the rest of the code never has to.
package table

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumn is returned when a requested column does not exist.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrNotFloat is returned when a string column is used where numeric
	// values are required.
	ErrNotFloat = errors.New("column is not numeric")
)

// Kind describes the value type of a column.
type Kind uint8

const (
	KindFloat Kind = iota
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	}
	panic(fmt.Sprintf("Kind.String(): unknown kind %d", k))
}

// Column is one named column of values. Exactly one of Floats and Strings is
// populated, matching Kind.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Strings []string
}

// Len returns the number of values in the column.
func (c Column) Len() int {
	if c.Kind == KindString {
		return len(c.Strings)
	}
	return len(c.Floats)
}

// Table is an ordered set of equally long columns, addressable by name.
// Operations on tables return new values and never modify their input, so
// tables may be shared freely across goroutines once built.
type Table struct {
	cols  []Column
	index map[string]int
}

// New builds a table out of the given columns and validates the table
// invariants: column names must be unique and non-empty, every column must
// hold as many values as the first, and the populated value slice of each
// column must match its Kind.
func New(cols ...Column) (*Table, error) {
	t := &Table{
		cols:  cols,
		index: make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("column %d: empty name", i)
		}
		if _, ok := t.index[c.Name]; ok {
			return nil, fmt.Errorf("column %d: duplicate name %q", i, c.Name)
		}
		if c.Kind == KindFloat && c.Strings != nil {
			return nil, fmt.Errorf("column %q: float column holds strings", c.Name)
		}
		if c.Kind == KindString && c.Floats != nil {
			return nil, fmt.Errorf("column %q: string column holds floats", c.Name)
		}
		if c.Len() != cols[0].Len() {
			return nil, fmt.Errorf("column %q: %d values, want %d", c.Name, c.Len(), cols[0].Len())
		}
		t.index[c.Name] = i
	}
	return t, nil
}

// NumRows returns how many observations the table holds.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Names returns the column names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Columns returns the columns in table order. The returned slice is a copy,
// the value slices are shared.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.cols))
	copy(cols, t.cols)
	return cols
}

// Column looks up a column by name.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, fmt.Errorf("%w %q", ErrUnknownColumn, name)
	}
	return t.cols[i], nil
}

// Floats returns the values of a numeric column. It fails with
// ErrUnknownColumn when the column does not exist and with ErrNotFloat when
// it holds strings.
func (t *Table) Floats(name string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != KindFloat {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotFloat, name, c.Kind)
	}
	return c.Floats, nil
}
