package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/raintank/lctank/reduce"
	"github.com/raintank/lctank/table"
)

// ErrUnknownBand means a requested band has no lightcurve in the collection.
var ErrUnknownBand = errors.New("unknown band")

// DefaultStats are the summary rows computed when the caller does not pick any.
var DefaultStats = []Stat{Max, Mean, Min}

// MaxMag returns the maximum of the named magnitude column.
func MaxMag(t *table.Table, col string) (float64, error) {
	in, err := t.Floats(col)
	if err != nil {
		return math.NaN(), err
	}
	return reduce.Max(in), nil
}

// MeanMag returns the mean of the named magnitude column.
func MeanMag(t *table.Table, col string) (float64, error) {
	in, err := t.Floats(col)
	if err != nil {
		return math.NaN(), err
	}
	return reduce.Mean(in), nil
}

// MinMag returns the minimum of the named magnitude column.
func MinMag(t *table.Table, col string) (float64, error) {
	in, err := t.Floats(col)
	if err != nil {
		return math.NaN(), err
	}
	return reduce.Min(in), nil
}

// Calc computes the given stats over the shared magnitude column of every
// requested band, in band order. All bands must be present in lc and must
// hold col as a numeric column. When no stats are selected it computes
// DefaultStats.
func Calc(lc map[string]*table.Table, bands []string, col string, sel ...Stat) (*Summary, error) {
	if len(sel) == 0 {
		sel = DefaultStats
	}
	fns := make([]reduce.AggFunc, len(sel))
	for i, s := range sel {
		fns[i] = GetAggFunc(s)
		if fns[i] == nil {
			return nil, errUnknownStatFunction
		}
	}
	sum := newSummary(sel, bands)
	for j, band := range bands {
		t, ok := lc[band]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownBand, band)
		}
		in, err := t.Floats(col)
		if err != nil {
			return nil, fmt.Errorf("band %q: %w", band, err)
		}
		for i := range sel {
			sum.vals[i][j] = fns[i](in)
		}
	}
	return sum, nil
}
