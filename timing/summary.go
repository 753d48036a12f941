package timing

import (
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the samples recorded under one name.
type Summary struct {
	Name     string
	Count    int
	Sum      float64
	Mean     float64
	StdDev   float64
	Min, Max float64
	P50, P95 float64
}

// Summarize computes the aggregate of values. An empty input yields a Summary
// with only Name set.
func Summarize(name string, values []float64) Summary {
	s := Summary{Name: name, Count: len(values)}
	if len(values) == 0 {
		return s
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s.Sum = floats.Sum(sorted)
	s.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.P50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.P95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	return s
}
