package numeric

import (
	"errors"
	"math"
)

var ErrMaxIterations = errors.New("maximum iterations reached")

// Solver finds roots of non-decreasing functions of one variable.
type Solver struct {
	MaxIterations int
	// Tolerance is the bracket width at which the midpoint is accepted.
	Tolerance float64
}

var DefaultSolver = Solver{MaxIterations: 200, Tolerance: 1e-6}

type RootResult struct {
	X          float64
	Iterations int
}

// Increasing returns x with f(x) = 0 for a non-decreasing f, starting at x0.
//
// The search first walks away from x0 with doubling steps until the sign of f
// changes, then narrows the bracket with Illinois-modified secant steps. A
// bisection is forced whenever two steps in a row fail to halve the bracket,
// so f may have jumps. On ErrMaxIterations the result holds the best guess.
func (s Solver) Increasing(f func(float64) float64, x0 float64) (RootResult, error) {
	x, fx := x0, f(x0)
	if fx == 0 {
		return RootResult{X: x0}, nil
	}

	// Bracket.
	dir := 1.0
	if fx > 0 {
		dir = -1
	}
	step := math.Max(math.Abs(x0), 1)
	iter := 0
	var lo, flo, hi, fhi float64
	for {
		if iter >= s.MaxIterations {
			return RootResult{X: x, Iterations: iter}, ErrMaxIterations
		}
		iter++
		next := x + dir*step
		fnext := f(next)
		if fnext == 0 {
			return RootResult{X: next, Iterations: iter}, nil
		}
		if (fnext > 0) != (fx > 0) {
			if dir > 0 {
				lo, flo, hi, fhi = x, fx, next, fnext
			} else {
				lo, flo, hi, fhi = next, fnext, x, fx
			}
			break
		}
		x, fx = next, fnext
		step *= 2
	}

	// Narrow. flo < 0 < fhi holds throughout.
	width := hi - lo
	stalls := 0
	side := 0
	for hi-lo > s.Tolerance {
		if iter >= s.MaxIterations {
			return RootResult{X: lo + (hi-lo)/2, Iterations: iter}, ErrMaxIterations
		}
		iter++

		x := hi - fhi*(hi-lo)/(fhi-flo)
		if stalls >= 2 || !(x > lo && x < hi) {
			x = lo + (hi-lo)/2
		}
		fx := f(x)
		if fx == 0 {
			return RootResult{X: x, Iterations: iter}, nil
		}

		if fx < 0 {
			lo, flo = x, fx
			if side < 0 {
				fhi /= 2
			}
			side = -1
		} else {
			hi, fhi = x, fx
			if side > 0 {
				flo /= 2
			}
			side = 1
		}

		if hi-lo > width/2 {
			stalls++
		} else {
			width = hi - lo
			stalls = 0
		}
	}
	return RootResult{X: lo + (hi-lo)/2, Iterations: iter}, nil
}
