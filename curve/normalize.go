// Package curve transforms individual lightcurves.
package curve

import (
	"errors"
	"math"

	"github.com/raintank/lctank/reduce"
	"github.com/raintank/lctank/table"
)

// ErrEmptyCurve means a lightcurve holds no observations to normalize.
var ErrEmptyCurve = errors.New("cannot normalize an empty lightcurve")

// EmptyPolicy picks the behavior of Normalize when a lightcurve has no
// observations. There is no obviously right answer, so callers choose.
type EmptyPolicy int

const (
	// EmptyError fails with ErrEmptyCurve.
	EmptyError EmptyPolicy = iota
	// EmptyNone yields an empty series.
	EmptyNone
)

// MinMax rescales a magnitude column to the unit interval: the dimmest
// sample maps to 1, the brightest to 0. The input is left untouched.
//
// The lower bound is the column minimum. The upper bound is the maximum of
// the shifted column, not of the raw one, so a curve that is constant ends
// up all zero through the 0/0 rule rather than dividing by zero. NaN samples
// poison both bounds and the whole output stays NaN.
func MinMax(in []float64) []float64 {
	minMax := func(shifted float64, hi float64) float64 {
		if math.IsNaN(shifted) {
			return shifted
		}
		if hi == 0 {
			return 0
		}
		return shifted / hi
	}

	out := make([]float64, len(in))
	if len(in) == 0 {
		return out
	}

	lo := reduce.Min(in)
	for i, v := range in {
		out[i] = v - lo
	}
	hi := reduce.Max(out)

	for i, v := range out {
		out[i] = minMax(v, hi)
	}
	return out
}

// Normalize rescales the named magnitude column of t via MinMax.
// An empty lightcurve is an error.
func Normalize(t *table.Table, col string) ([]float64, error) {
	return NormalizeWith(t, col, EmptyError)
}

// NormalizeWith is Normalize with an explicit policy for empty lightcurves.
func NormalizeWith(t *table.Table, col string, onEmpty EmptyPolicy) ([]float64, error) {
	in, err := t.Floats(col)
	if err != nil {
		return nil, err
	}
	if len(in) == 0 && onEmpty == EmptyError {
		return nil, ErrEmptyCurve
	}
	return MinMax(in), nil
}
