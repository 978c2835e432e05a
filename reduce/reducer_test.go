package reduce

import (
	"math"
	"testing"

	"github.com/raintank/lctank/test"
)

type testCase struct {
	title string
	fn    AggFunc
	in    []float64
	out   float64
}

// validate cannot just compare with ==, because NaN != NaN
func validate(cases []testCase, t *testing.T) {
	for i, c := range cases {
		out := c.fn(c.in)
		if math.IsNaN(c.out) {
			if !math.IsNaN(out) {
				t.Fatalf("output for testcase %d (%s): expected: NaN, got: %v", i, c.title, out)
			}
			continue
		}
		if out != c.out {
			t.Fatalf("output for testcase %d (%s): expected: %v, got: %v", i, c.title, c.out, out)
		}
	}
}

func TestReduceBasic(t *testing.T) {
	in := []float64{1, 7, 3}
	validate([]testCase{
		{"max", Max, in, 7},
		{"mean", Mean, in, 11.0 / 3},
		{"min", Min, in, 1},
		{"sum", Sum, in, 11},
		{"cnt", Cnt, in, 3},
		{"lst", Lst, in, 3},
		{"med", Med, in, 3},
		{"range", Range, in, 6},
	}, t)
}

func TestReduceZeros(t *testing.T) {
	in := []float64{0, 0, 0, 0}
	validate([]testCase{
		{"max", Max, in, 0},
		{"mean", Mean, in, 0},
		{"min", Min, in, 0},
		{"sum", Sum, in, 0},
		{"cnt", Cnt, in, 4},
		{"med", Med, in, 0},
		{"stddev", StdDev, in, 0},
		{"range", Range, in, 0},
	}, t)
}

func TestReduceSingle(t *testing.T) {
	in := []float64{5.5}
	validate([]testCase{
		{"max", Max, in, 5.5},
		{"mean", Mean, in, 5.5},
		{"min", Min, in, 5.5},
		{"sum", Sum, in, 5.5},
		{"cnt", Cnt, in, 1},
		{"lst", Lst, in, 5.5},
		{"med", Med, in, 5.5},
		{"stddev", StdDev, in, 0},
		{"range", Range, in, 0},
	}, t)
}

// a single NaN anywhere in the column makes every arithmetic reduction NaN.
// Cnt and Lst are positional, not arithmetic.
func TestReduceNaNPropagates(t *testing.T) {
	in := []float64{1, math.NaN(), 3}
	validate([]testCase{
		{"max", Max, in, math.NaN()},
		{"mean", Mean, in, math.NaN()},
		{"min", Min, in, math.NaN()},
		{"sum", Sum, in, math.NaN()},
		{"med", Med, in, math.NaN()},
		{"stddev", StdDev, in, math.NaN()},
		{"range", Range, in, math.NaN()},
		{"cnt", Cnt, in, 3},
		{"lst", Lst, in, 3},
	}, t)
}

func TestReduceEmpty(t *testing.T) {
	validate([]testCase{
		{"max", Max, nil, math.NaN()},
		{"mean", Mean, nil, math.NaN()},
		{"min", Min, nil, math.NaN()},
		{"sum", Sum, nil, math.NaN()},
		{"lst", Lst, nil, math.NaN()},
		{"med", Med, nil, math.NaN()},
		{"stddev", StdDev, nil, math.NaN()},
		{"range", Range, nil, math.NaN()},
		{"cnt", Cnt, nil, 0},
	}, t)
}

func TestReduceMedEven(t *testing.T) {
	validate([]testCase{
		{"med", Med, []float64{4, 1, 3, 2}, 2.5},
	}, t)
}

func TestReduceStdDev(t *testing.T) {
	validate([]testCase{
		{"stddev", StdDev, []float64{2, 4, 4, 4, 5, 5, 7, 9}, 2},
	}, t)
}

// for any column without NaNs, Min <= Mean <= Max must hold
func TestReduceOrdering(t *testing.T) {
	in := []float64{14.32, 12.91, 13.47, 15.02, 12.88}
	min := Min(in)
	mean := Mean(in)
	max := Max(in)
	if min > mean || mean > max {
		t.Fatalf("expected min <= mean <= max, got min=%v mean=%v max=%v", min, mean, max)
	}
}

var dummy float64

func benchmarkReduce(fn func() []float64, agg AggFunc, b *testing.B) {
	var l int
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		in := fn()
		l = len(in)
		b.StartTimer()
		dummy = agg(in)
	}
	b.SetBytes(int64(l * 8))
}

func BenchmarkMeanRand1M(b *testing.B) {
	benchmarkReduce(test.RandMags1M, Mean, b)
}
func BenchmarkMeanRandWithNaNs1M(b *testing.B) {
	benchmarkReduce(test.RandMagsWithNaNs1M, Mean, b)
}
func BenchmarkMinRand1M(b *testing.B) {
	benchmarkReduce(test.RandMags1M, Min, b)
}
func BenchmarkMinRandWithNaNs1M(b *testing.B) {
	benchmarkReduce(test.RandMagsWithNaNs1M, Min, b)
}
func BenchmarkMaxRand1M(b *testing.B) {
	benchmarkReduce(test.RandMags1M, Max, b)
}
func BenchmarkMaxRandWithNaNs1M(b *testing.B) {
	benchmarkReduce(test.RandMagsWithNaNs1M, Max, b)
}
func BenchmarkStdDevRand1M(b *testing.B) {
	benchmarkReduce(test.RandMags1M, StdDev, b)
}
