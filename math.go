package sar

import (
	"fmt"
	"math"
)

const (
	// invφ is the inverse golden ratio, the section ratio of the search.
	invφ = 0.6180339887498949

	// maxSectionIters bounds the golden section search. The interval shrinks
	// by invφ every iteration so this is generous for any sane tolerance.
	maxSectionIters = 100
)

// GoldenSection minimizes f on [lo, hi] by golden section search and returns
// the best argument found, the value of f there and the number of function
// evaluations. The search stops once the bracket is narrower than tol.
func GoldenSection(f func(float64) float64, lo, hi, tol float64) (x, fx float64, evals int, err error) {
	if hi <= lo {
		panic("GoldenSection requires lo < hi")
	}
	if tol <= 0 {
		panic("GoldenSection requires a positive tolerance")
	}
	a, b := lo, hi
	c := b - invφ*(b-a)
	d := a + invφ*(b-a)
	fc, fd := f(c), f(d)
	evals = 2
	for b-a > tol {
		if evals >= maxSectionIters {
			x, fx = bestOf(c, fc, d, fd)
			return x, fx, evals, fmt.Errorf("golden section did not converge after %d iterations", evals)
		}
		if fc < fd {
			b = d
			d, fd = c, fc
			c = b - invφ*(b-a)
			fc = f(c)
		} else {
			a = c
			c, fc = d, fd
			d = a + invφ*(b-a)
			fd = f(d)
		}
		evals++
	}
	x, fx = bestOf(c, fc, d, fd)
	return x, fx, evals, nil
}

func bestOf(x0, f0, x1, f1 float64) (float64, float64) {
	if f0 < f1 {
		return x0, f0
	}
	return x1, f1
}

// interp linearly interpolates y(x) over the sample points (xs, ys), which
// must be sorted by xs. Arguments outside the samples clamp to the end
// values.
func interp(x float64, xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) == 0 {
		panic("interp requires two equally sized non-empty slices")
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1]
	}
	i := 1
	for xs[i] < x {
		i++
	}
	t := (x - xs[i-1]) / (xs[i] - xs[i-1])
	return ys[i-1] + t*(ys[i]-ys[i-1])
}

// notFinite returns whether v is an IEEE special value.
func notFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
