package regionclust

import (
	"fmt"
	"math"
)

// pairChoice is a candidate merge: cluster positions lo < hi and their score.
type pairChoice struct {
	lo, hi int
	score  float64
}

var noPair = pairChoice{lo: -1, hi: -1, score: math.NaN()}

// found reports whether any pair has been recorded.
func (c pairChoice) found() bool { return c.hi >= 0 }

// beats reports whether candidate should replace the current best when
// pairs are visited in scan order. Only a strictly greater score wins, so the
// earliest pair holding the maximum is kept. NaN never beats a number; if
// every score is NaN the first pair visited is kept.
func (c pairChoice) beats(best pairChoice) bool {
	if !best.found() {
		return true
	}
	if math.IsNaN(best.score) {
		return !math.IsNaN(c.score)
	}
	return c.score > best.score
}

// SelectBestPair returns the positions i < j of the two clusters with the
// greatest average correlation, along with that correlation.
//
// Pairs are visited with the higher position ascending in the outer loop and
// the lower position ascending in the inner loop; the first pair reaching the
// maximum wins and no other tie-break is applied. Returns an error wrapping
// ErrInsufficientClusters if p has fewer than two clusters.
func SelectBestPair(p Partition, g *Graph) (i, j int, score float64, err error) {
	if p.Len() < 2 {
		return -1, -1, math.NaN(), fmt.Errorf("%w: partition has %d", ErrInsufficientClusters, p.Len())
	}
	best := scanRows(p.clusters, g, 1, p.Len())
	return best.lo, best.hi, best.score, nil
}

// scanRows evaluates every pair (lo, hi) with hi in [start, end) and lo < hi,
// in scan order, and returns the winner.
func scanRows(clusters []Cluster, g *Graph, start, end int) pairChoice {
	best := noPair
	for hi := start; hi < end; hi++ {
		for lo := 0; lo < hi; lo++ {
			c := pairChoice{
				lo:    lo,
				hi:    hi,
				score: AverageCorrelation(g, clusters[lo].Members, clusters[hi].Members),
			}
			if c.beats(best) {
				best = c
			}
		}
	}
	return best
}

// selectNearestNodes is the single-linkage selection step. It finds the most
// correlated pair of nodes that belong to different clusters and returns the
// positions of their two clusters. Node pairs are visited with the higher
// node ascending in the outer loop and the lower node ascending in the inner
// loop; the first strict maximum wins.
func selectNearestNodes(p Partition, g *Graph) (i, j int, score float64, err error) {
	if p.Len() < 2 {
		return -1, -1, math.NaN(), fmt.Errorf("%w: partition has %d", ErrInsufficientClusters, p.Len())
	}

	n := p.NodeCount()
	owner := make([]int, n)
	for node := range owner {
		if owner[node], err = p.Locate(node); err != nil {
			return -1, -1, math.NaN(), err
		}
	}

	best := noPair
	bestA, bestB := -1, -1
	for b := 1; b < n; b++ {
		for a := 0; a < b; a++ {
			if owner[a] == owner[b] {
				continue
			}
			c := pairChoice{lo: a, hi: b, score: g.Weight(a, b)}
			if c.beats(best) {
				best = c
				bestA, bestB = a, b
			}
		}
	}

	i, j = owner[bestA], owner[bestB]
	if i > j {
		i, j = j, i
	}
	return i, j, best.score, nil
}
