// Package stats provides an abstraction for lightcurve summary statistics
// and computes them across bands.
package stats

import (
	"errors"
	"fmt"

	"github.com/raintank/lctank/reduce"
)

// Stat is a highlevel description of a column summary method
// mostly for use by the command line tools, but can also be used internally for data processing
type Stat int

var errUnknownStatFunction = errors.New("unknown stat function")

const (
	None Stat = iota
	Max
	Mean
	Min
	Med // not part of the default summary
	StdDev
	Range
)

// String provides human friendly names
func (s Stat) String() string {
	switch s {
	case None:
		return "NoneStat"
	case Max:
		return "MaximumStat"
	case Mean:
		return "MeanStat"
	case Min:
		return "MinimumStat"
	case Med:
		return "MedianStat"
	case StdDev:
		return "StdDevStat"
	case Range:
		return "RangeStat"
	}
	panic(fmt.Sprintf("Stat.String(): unknown stat %d", s))
}

// Row provides the row label used in summaries and serialized output
func (s Stat) Row() string {
	switch s {
	case None:
		panic("cannot get a row label for no stat")
	case Max:
		return "max"
	case Mean:
		return "mean"
	case Min:
		return "min"
	case Med:
		return "med"
	case StdDev:
		return "stddev"
	case Range:
		return "range"
	}
	panic(fmt.Sprintf("Stat.Row(): unknown stat %d", s))
}

func FromName(name string) Stat {
	switch name {
	case "max":
		return Max
	case "mean", "avg", "average":
		return Mean
	case "min":
		return Min
	case "med", "median":
		return Med
	case "stddev":
		return StdDev
	case "range":
		return Range
	}
	return None
}

// map the stat to the respective reduction function, if applicable.
func GetAggFunc(stat Stat) reduce.AggFunc {
	var fn reduce.AggFunc
	switch stat {
	case Max:
		fn = reduce.Max
	case Mean:
		fn = reduce.Mean
	case Min:
		fn = reduce.Min
	case Med:
		fn = reduce.Med
	case StdDev:
		fn = reduce.StdDev
	case Range:
		fn = reduce.Range
	}
	return fn
}

func Validate(fn string) error {
	if FromName(fn) == None {
		return errUnknownStatFunction
	}
	return nil
}
