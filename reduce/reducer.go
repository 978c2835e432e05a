// Package reduce implements single-pass reductions over columns of samples,
// in particular the summary aggregates.
package reduce

// reduction functions for columns of data.
//
// All reducers share one numeric policy: they fold over every sample and let
// NaN propagate the way IEEE arithmetic does. A single undefined sample makes
// the whole reduction undefined; nothing is silently skipped. Reducing no
// samples yields NaN, except Cnt which yields 0.
import (
	"math"
	"sort"
)

type AggFunc func(in []float64) float64

func Mean(in []float64) float64 {
	if len(in) == 0 {
		return math.NaN()
	}
	sum := float64(0)
	for _, v := range in {
		sum += v
	}
	return sum / float64(len(in))
}

func Cnt(in []float64) float64 {
	return float64(len(in))
}

// Lst returns the last sample. It involves no arithmetic, so a NaN earlier in
// the column does not affect it.
func Lst(in []float64) float64 {
	if len(in) == 0 {
		return math.NaN()
	}
	return in[len(in)-1]
}

func Min(in []float64) float64 {
	if len(in) == 0 {
		return math.NaN()
	}
	min := math.Inf(1)
	for _, v := range in {
		min = math.Min(min, v)
	}
	return min
}

func Max(in []float64) float64 {
	if len(in) == 0 {
		return math.NaN()
	}
	max := math.Inf(-1)
	for _, v := range in {
		max = math.Max(max, v)
	}
	return max
}

func Med(in []float64) float64 {
	if len(in) == 0 {
		return math.NaN()
	}
	vals := make([]float64, 0, len(in))
	for _, v := range in {
		if math.IsNaN(v) {
			return math.NaN()
		}
		vals = append(vals, v)
	}
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 0 {
		return (vals[mid-1] + vals[mid]) / 2
	}
	return vals[mid]
}

func StdDev(in []float64) float64 {
	mean := Mean(in)
	if math.IsNaN(mean) {
		return mean
	}
	sumDeviationsSquared := float64(0)
	for _, v := range in {
		deviation := v - mean
		sumDeviationsSquared += deviation * deviation
	}
	return math.Sqrt(sumDeviationsSquared / float64(len(in)))
}

func Range(in []float64) float64 {
	if len(in) == 0 {
		return math.NaN()
	}
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, v := range in {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return max - min
}

func Sum(in []float64) float64 {
	if len(in) == 0 {
		return math.NaN()
	}
	sum := float64(0)
	for _, v := range in {
		sum += v
	}
	return sum
}
