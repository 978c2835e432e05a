// package test contains utility functions used by tests/benchmarks in various packages
package test

import (
	"math"
	"math/rand"
)

// these serve as a "cache" of clean magnitudes we can use instead of regenerating all the time
var randMagsWithNaNsBuf []float64
var randMagsBuf []float64
var randMagsWithNaNs10kBuf []float64
var randMags10kBuf []float64

func RandMags1M() []float64 {
	if len(randMagsBuf) == 0 {
		// let's just do the "odd" case, since the non-odd will be sufficiently close
		randMagsBuf = make([]float64, 1000001)
		for i := 0; i < len(randMagsBuf); i++ {
			randMagsBuf[i] = 10 + 5*rand.Float64()
		}
	}
	out := make([]float64, len(randMagsBuf))
	copy(out, randMagsBuf)
	return out
}

func RandMagsWithNaNs1M() []float64 {
	if len(randMagsWithNaNsBuf) == 0 {
		// let's just do the "odd" case, since the non-odd will be sufficiently close
		randMagsWithNaNsBuf = make([]float64, 1000001)
		for i := 0; i < len(randMagsWithNaNsBuf); i++ {
			if i%2 == 0 {
				randMagsWithNaNsBuf[i] = math.NaN()
			} else {
				randMagsWithNaNsBuf[i] = 10 + 5*rand.Float64()
			}
		}
	}
	out := make([]float64, len(randMagsWithNaNsBuf))
	copy(out, randMagsWithNaNsBuf)
	return out
}

func RandMags10k() []float64 {
	if len(randMags10kBuf) == 0 {
		randMags10kBuf = make([]float64, 10000)
		for i := 0; i < len(randMags10kBuf); i++ {
			randMags10kBuf[i] = 10 + 5*rand.Float64()
		}
	}
	out := make([]float64, len(randMags10kBuf))
	copy(out, randMags10kBuf)
	return out
}

func RandMagsWithNaNs10k() []float64 {
	if len(randMagsWithNaNs10kBuf) == 0 {
		randMagsWithNaNs10kBuf = make([]float64, 10000)
		for i := 0; i < len(randMagsWithNaNs10kBuf); i++ {
			if i%2 == 0 {
				randMagsWithNaNs10kBuf[i] = math.NaN()
			} else {
				randMagsWithNaNs10kBuf[i] = 10 + 5*rand.Float64()
			}
		}
	}
	out := make([]float64, len(randMagsWithNaNs10kBuf))
	copy(out, randMagsWithNaNs10kBuf)
	return out
}
