package numeric

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// Gauss-Legendre nodes per panel; exact for polynomials up to degree 9.
	panelNodes = 5
	maxDepth   = 50
	// Levels bisected before the error check applies.
	minDepth = 4
)

// DefaultTolerance is the absolute error target used by callers that need
// cent accuracy on yearly amounts.
const DefaultTolerance = 1e-6

// Integrate returns the definite integral of f over [a, b].
//
// The range is first cut at every break inside (a, b); pass the points where
// f jumps or kinks, such as bracket boundaries and income ceilings. Each piece
// is then integrated adaptively: panels are bisected until the two halves
// agree with the whole panel within the piece's share of tol, halved on every
// level. A non-finite bound or integrand yields NaN.
func Integrate(f func(float64) float64, a, b, tol float64, breaks ...float64) float64 {
	if !finite(a) || !finite(b) {
		return math.NaN()
	}
	if a == b {
		return 0
	}
	if a > b {
		return -Integrate(f, b, a, tol, breaks...)
	}

	cuts := pieces(a, b, breaks)
	share := tol / float64(len(cuts)-1)
	var sum float64
	for i := 1; i < len(cuts); i++ {
		lo, hi := cuts[i-1], cuts[i]
		sum += adapt(f, lo, hi, panel(f, lo, hi), share, 0)
	}
	return sum
}

// pieces returns a, the sorted distinct breaks strictly inside (a, b), and b.
func pieces(a, b float64, breaks []float64) []float64 {
	cuts := make([]float64, 0, len(breaks)+2)
	cuts = append(cuts, a)
	inner := make([]float64, 0, len(breaks))
	for _, x := range breaks {
		if x > a && x < b {
			inner = append(inner, x)
		}
	}
	sort.Float64s(inner)
	for _, x := range inner {
		if x != cuts[len(cuts)-1] {
			cuts = append(cuts, x)
		}
	}
	return append(cuts, b)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func panel(f func(float64) float64, a, b float64) float64 {
	return quad.Fixed(f, a, b, panelNodes, quad.Legendre{}, 0)
}

func adapt(f func(float64) float64, a, b, whole, tol float64, depth int) float64 {
	mid := a + (b-a)/2
	left := panel(f, a, mid)
	right := panel(f, mid, b)
	sum := left + right

	if !finite(sum) {
		return math.NaN()
	}
	if depth >= maxDepth || mid <= a || mid >= b {
		return sum
	}
	if depth >= minDepth && math.Abs(sum-whole) <= tol {
		return sum
	}
	return adapt(f, a, mid, left, tol/2, depth+1) + adapt(f, mid, b, right, tol/2, depth+1)
}
