package regionclust

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ClusterStats summarizes how tightly a cluster hangs together.
type ClusterStats struct {
	Size int
	// Cohesion is the mean correlation over unordered pairs of distinct
	// members. NaN for singletons.
	Cohesion float64
	// StdDev is the standard deviation of those pair correlations; 0 when
	// the cluster has fewer than two pairs, NaN for singletons.
	StdDev float64
	// Separation is the mean correlation between members and every node
	// outside the cluster. NaN when the cluster holds every node.
	Separation float64
}

// withinWeights returns the weights of all unordered member pairs.
func withinWeights(g *Graph, members []int) []float64 {
	if len(members) < 2 {
		return nil
	}
	w := make([]float64, 0, len(members)*(len(members)-1)/2)
	for a := 1; a < len(members); a++ {
		for b := 0; b < a; b++ {
			w = append(w, g.Weight(members[a], members[b]))
		}
	}
	return w
}

// Cohesion returns the mean correlation between distinct members of a
// cluster, or NaN for fewer than two members.
func Cohesion(g *Graph, members []int) float64 {
	w := withinWeights(g, members)
	if len(w) == 0 {
		return math.NaN()
	}
	return floats.Sum(w) / float64(len(w))
}

// ComputeClusterStats returns one ClusterStats per cluster of p, in
// partition order. p must cover exactly the nodes of g: a size mismatch
// is ErrMalformedGraph and an uncovered node is ErrNodeNotFound.
func ComputeClusterStats(g *Graph, p Partition) ([]ClusterStats, error) {
	if p.NodeCount() != g.Len() {
		return nil, fmt.Errorf("%w: partition covers %d nodes, graph has %d", ErrMalformedGraph, p.NodeCount(), g.Len())
	}
	labels, err := p.Labels()
	if err != nil {
		return nil, err
	}

	stats := make([]ClusterStats, p.Len())
	for ci, c := range p.clusters {
		s := ClusterStats{
			Size:     c.Size(),
			Cohesion: math.NaN(),
			StdDev:   math.NaN(),
		}
		if w := withinWeights(g, c.Members); len(w) > 0 {
			s.Cohesion = floats.Sum(w) / float64(len(w))
			s.StdDev = 0
			if len(w) > 1 {
				s.StdDev = stat.StdDev(w, nil)
			}
		}

		outside := make([]int, 0, g.Len()-c.Size())
		for node, l := range labels {
			if l != ci {
				outside = append(outside, node)
			}
		}
		s.Separation = AverageCorrelation(g, c.Members, outside)

		stats[ci] = s
	}
	return stats, nil
}
