package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// pearson returns the correlation coefficient of x and y with its two-tailed
// p-value. ok is false when r is undefined (constant series or fewer than 3 points).
func pearson(x, y []float64) (r, p float64, ok bool) {
	n := len(x)
	if n != len(y) || n < 3 || constant(x) || constant(y) {
		return 0, 1, false
	}
	r = stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0, 1, false
	}
	r = clamp(-1, 1, r)
	if math.Abs(r) == 1 {
		return r, 0, true
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	return r, twoTailed(t, df), true
}

// meanEffectP is the two-tailed p-value of a one-sample t-test of d against zero.
func meanEffectP(d []float64) float64 {
	n := len(d)
	if n == 0 {
		return 1
	}
	mean := stat.Mean(d, nil)
	if n < 2 || constant(d) {
		if mean != 0 {
			return 0
		}
		return 1
	}
	se := stat.StdDev(d, nil) / math.Sqrt(float64(n))
	return twoTailed(mean/se, float64(n-1))
}

func twoTailed(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return clamp(0, 1, 2*dist.CDF(-math.Abs(t)))
}

func constant(x []float64) bool {
	if len(x) == 0 {
		return true
	}
	return floats.Max(x) == floats.Min(x)
}

func clamp(lo, hi, v float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
