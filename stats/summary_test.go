package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	ogórek "github.com/kisielk/og-rek"
	"github.com/raintank/lctank/table"
)

func testSummary(t *testing.T) *Summary {
	t.Helper()
	lc := map[string]*table.Table{
		"u": mustTable(t, []string{"mag"}, []float64{1, 7, 3}),
		"g": mustTable(t, []string{"mag"}, []float64{0, 0, 0, 0}),
	}
	sum, err := Calc(lc, []string{"u", "g"}, "mag")
	if err != nil {
		t.Fatalf("Calc: %s", err)
	}
	return sum
}

func TestSummaryValueMissing(t *testing.T) {
	sum := testSummary(t)
	if _, ok := sum.Value(Max, "x"); ok {
		t.Fatal("expected no value for unknown band")
	}
	if _, ok := sum.Value(Med, "u"); ok {
		t.Fatal("expected no value for unselected stat")
	}
}

func TestSummaryMarshalJSON(t *testing.T) {
	sum := testSummary(t)
	got, err := sum.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %s", err)
	}
	exp := `{"u":{"max":7,"mean":3.6666666666666665,"min":1},"g":{"max":0,"mean":0,"min":0}}`
	if string(got) != exp {
		t.Fatalf("json mismatch:\nexpected: %s\ngot:      %s", exp, got)
	}
}

// NaN is not valid JSON and must come out as null
func TestSummaryMarshalJSONNaN(t *testing.T) {
	lc := map[string]*table.Table{
		"w": mustTable(t, []string{"mag"}, []float64{math.NaN(), 12.3}),
	}
	sum, err := Calc(lc, []string{"w"}, "mag")
	if err != nil {
		t.Fatalf("Calc: %s", err)
	}
	got, err := sum.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %s", err)
	}
	exp := `{"w":{"max":null,"mean":null,"min":null}}`
	if string(got) != exp {
		t.Fatalf("json mismatch:\nexpected: %s\ngot:      %s", exp, got)
	}
}

func TestSummaryMarshalJSONNoBands(t *testing.T) {
	sum, err := Calc(nil, nil, "mag")
	if err != nil {
		t.Fatalf("Calc: %s", err)
	}
	got, err := sum.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %s", err)
	}
	if string(got) != "{}" {
		t.Fatalf("expected {}, got %s", got)
	}
}

func TestSummaryPickleRoundtrip(t *testing.T) {
	sum := testSummary(t)
	out, err := sum.Pickle(nil)
	if err != nil {
		t.Fatalf("Pickle: %s", err)
	}
	decoded, err := ogórek.NewDecoder(bytes.NewReader(out)).Decode()
	if err != nil {
		t.Fatalf("decoding pickle: %s", err)
	}
	root, ok := decoded.(map[interface{}]interface{})
	if !ok {
		t.Fatalf("expected a dict, got %T", decoded)
	}
	exp := map[string]map[string]float64{
		"u": {"max": 7, "mean": 11.0 / 3, "min": 1},
		"g": {"max": 0, "mean": 0, "min": 0},
	}
	for band, stats := range exp {
		cell, ok := root[band].(map[interface{}]interface{})
		if !ok {
			t.Fatalf("band %q: expected a dict, got %T", band, root[band])
		}
		for row, want := range stats {
			got, ok := cell[row].(float64)
			if !ok {
				t.Fatalf("band %q row %q: expected a float, got %T", band, row, cell[row])
			}
			if got != want {
				t.Fatalf("band %q row %q: expected %v, got %v", band, row, want, got)
			}
		}
	}
}

func TestSummaryWriteTable(t *testing.T) {
	sum := testSummary(t)
	var buf bytes.Buffer
	if err := sum.WriteTable(&buf); err != nil {
		t.Fatalf("WriteTable: %s", err)
	}
	var got [][]string
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		got = append(got, strings.Fields(line))
	}
	exp := [][]string{
		{"stat", "u", "g"},
		{"max", "7", "0"},
		{"mean", "3.6666666666666665", "0"},
		{"min", "1", "0"},
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("table mismatch (-want +got):\n%s", diff)
	}
}
