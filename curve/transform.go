package curve

import "math"

// Fill replaces NaN samples with def. The input is left untouched.
func Fill(in []float64, def float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		if math.IsNaN(v) {
			v = def
		}
		out[i] = v
	}
	return out
}

// Offset shifts every sample by delta. NaN stays NaN.
func Offset(in []float64, delta float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = v + delta
	}
	return out
}

// Scale multiplies every sample by factor. NaN stays NaN.
func Scale(in []float64, factor float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = v * factor
	}
	return out
}
