package table

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewValidation(t *testing.T) {
	type testCase struct {
		title  string
		in     []Column
		expErr bool
	}

	testCases := []testCase{
		{
			title:  "no columns",
			in:     nil,
			expErr: false,
		},
		{
			title: "valid mixed kinds",
			in: []Column{
				{Name: "mag", Kind: KindFloat, Floats: []float64{1, 2}},
				{Name: "band", Kind: KindString, Strings: []string{"g", "r"}},
			},
			expErr: false,
		},
		{
			title: "empty name",
			in: []Column{
				{Name: "", Kind: KindFloat, Floats: []float64{1}},
			},
			expErr: true,
		},
		{
			title: "duplicate name",
			in: []Column{
				{Name: "mag", Kind: KindFloat, Floats: []float64{1}},
				{Name: "mag", Kind: KindFloat, Floats: []float64{2}},
			},
			expErr: true,
		},
		{
			title: "length mismatch",
			in: []Column{
				{Name: "a", Kind: KindFloat, Floats: []float64{1, 2}},
				{Name: "b", Kind: KindFloat, Floats: []float64{1}},
			},
			expErr: true,
		},
		{
			title: "float column holding strings",
			in: []Column{
				{Name: "a", Kind: KindFloat, Strings: []string{"x"}},
			},
			expErr: true,
		},
		{
			title: "string column holding floats",
			in: []Column{
				{Name: "a", Kind: KindString, Floats: []float64{1}},
			},
			expErr: true,
		},
	}

	for _, c := range testCases {
		_, err := New(c.in...)
		if c.expErr && err == nil {
			t.Errorf("testcase %q expected error but got none", c.title)
		}
		if !c.expErr && err != nil {
			t.Errorf("testcase %q expected no error but got %s", c.title, err)
		}
	}
}

func TestColumnLookup(t *testing.T) {
	tbl, err := New(
		Column{Name: "time", Kind: KindFloat, Floats: []float64{1, 2, 3}},
		Column{Name: "band", Kind: KindString, Strings: []string{"g", "g", "r"}},
	)
	if err != nil {
		t.Fatal(err)
	}

	if got := tbl.NumRows(); got != 3 {
		t.Fatalf("NumRows: expected 3, got %d", got)
	}
	if diff := cmp.Diff([]string{"time", "band"}, tbl.Names()); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}

	vals, err := tbl.Floats("time")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, vals); diff != "" {
		t.Fatalf("Floats mismatch (-want +got):\n%s", diff)
	}

	if _, err := tbl.Floats("nope"); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
	if _, err := tbl.Column("nope"); !errors.Is(err, ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
	if _, err := tbl.Floats("band"); !errors.Is(err, ErrNotFloat) {
		t.Fatalf("expected ErrNotFloat, got %v", err)
	}
}

func TestEmptyTable(t *testing.T) {
	tbl, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.NumRows(); got != 0 {
		t.Fatalf("NumRows: expected 0, got %d", got)
	}
	if got := len(tbl.Names()); got != 0 {
		t.Fatalf("Names: expected none, got %d", got)
	}
}

func TestColumnsAreCopied(t *testing.T) {
	tbl, err := New(
		Column{Name: "mag", Kind: KindFloat, Floats: []float64{5}},
	)
	if err != nil {
		t.Fatal(err)
	}
	cols := tbl.Columns()
	cols[0].Name = "changed"
	if _, err := tbl.Column("mag"); err != nil {
		t.Fatalf("table changed through Columns copy: %v", err)
	}
}
