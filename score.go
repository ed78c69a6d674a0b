package regionclust

import "math"

// AverageCorrelation returns the mean weight over every cross pair (x, y)
// with x in a and y in b. The clusters must be non-empty and disjoint; an
// empty cluster yields NaN.
//
// The result is the plain sum of all |a|·|b| cross terms divided by |a|·|b|,
// never a running mean. The cluster with the smaller first member is always
// iterated in the outer loop, so the summation order, and therefore the
// result, is identical for (a, b) and (b, a).
func AverageCorrelation(g *Graph, a, b []int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return math.NaN()
	}
	if b[0] < a[0] {
		a, b = b, a
	}

	var sum float64
	for _, x := range a {
		for _, y := range b {
			if x == y {
				continue
			}
			sum += g.Weight(x, y)
		}
	}
	return sum / float64(len(a)*len(b))
}

// MaxCorrelation returns the largest single cross weight between a and b,
// the single-linkage similarity. An empty cluster yields NaN.
func MaxCorrelation(g *Graph, a, b []int) float64 {
	if len(a) == 0 || len(b) == 0 {
		return math.NaN()
	}
	best := math.Inf(-1)
	for _, x := range a {
		for _, y := range b {
			if x == y {
				continue
			}
			if w := g.Weight(x, y); w > best {
				best = w
			}
		}
	}
	return best
}
