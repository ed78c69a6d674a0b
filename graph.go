package regionclust

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// symmetryTolerance is the largest |w[i][j] - w[j][i]| accepted by NewGraph.
// Only the upper triangle is kept, so the scorer sees an exactly symmetric
// matrix either way.
const symmetryTolerance = 1e-9

// Location is the 3-D center of a region in scanner coordinates.
type Location struct {
	X, Y, Z float64
}

// Node is a single brain region. Index is the row/column of the region in
// the weight matrix and always equals its position in Graph.Nodes.
// Location is nil when region centers were not loaded.
type Node struct {
	Index    int
	Name     string
	Location *Location
}

// NodesFromNames builds nodes in input order. locs may be nil or shorter
// than names; nodes without a matching entry get no location.
func NodesFromNames(names []string, locs []Location) []Node {
	nodes := make([]Node, len(names))
	for i, name := range names {
		nodes[i] = Node{Index: i, Name: name}
		if i < len(locs) {
			loc := locs[i]
			nodes[i].Location = &loc
		}
	}
	return nodes
}

// Graph is an immutable correlation graph: an ordered node set plus a
// symmetric weight matrix. It is safe for concurrent use by readers.
type Graph struct {
	nodes   []Node
	weights *mat.SymDense

	// Upper-triangle view of weights for the scoring hot path.
	data   []float64
	stride int
}

// NewGraph validates nodes and a row-major weight matrix and builds a Graph.
// The diagonal is neither read nor validated. Returns an error wrapping
// ErrMalformedGraph if the input is inconsistent.
func NewGraph(nodes []Node, weights [][]float64) (*Graph, error) {
	n := len(weights)
	for i, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedGraph, i, len(row), n)
		}
	}
	return newGraph(nodes, n, func(i, j int) float64 { return weights[i][j] })
}

// NewGraphFromMatrix is NewGraph for a gonum matrix, such as the session
// average produced upstream.
func NewGraphFromMatrix(nodes []Node, m mat.Matrix) (*Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrMalformedGraph)
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: matrix is %dx%d, not square", ErrMalformedGraph, r, c)
	}
	return newGraph(nodes, r, m.At)
}

func newGraph(nodes []Node, n int, at func(i, j int) float64) (*Graph, error) {
	if n == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", ErrMalformedGraph)
	}
	if len(nodes) != n {
		return nil, fmt.Errorf("%w: %d nodes for a %dx%d matrix", ErrMalformedGraph, len(nodes), n, n)
	}

	owned := make([]Node, n)
	for i, node := range nodes {
		if node.Index != i {
			return nil, fmt.Errorf("%w: node %q at position %d has index %d", ErrMalformedGraph, node.Name, i, node.Index)
		}
		owned[i] = node
		if node.Location != nil {
			loc := *node.Location
			owned[i].Location = &loc
		}
	}

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			upper, lower := at(i, j), at(j, i)
			if math.IsNaN(upper) || math.IsInf(upper, 0) || math.IsNaN(lower) || math.IsInf(lower, 0) {
				return nil, fmt.Errorf("%w: non-finite weight between %d and %d", ErrMalformedGraph, i, j)
			}
			if math.Abs(upper-lower) > symmetryTolerance {
				return nil, fmt.Errorf("%w: w[%d][%d]=%g but w[%d][%d]=%g", ErrMalformedGraph, i, j, upper, j, i, lower)
			}
			data[i*n+j] = upper
		}
	}

	weights := mat.NewSymDense(n, data)
	raw := weights.RawSymmetric()
	return &Graph{
		nodes:   owned,
		weights: weights,
		data:    raw.Data,
		stride:  raw.Stride,
	}, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node at index i.
func (g *Graph) Node(i int) Node { return g.nodes[i] }

// Nodes returns a copy of the node list in index order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Names returns the node names for the given indices, in the same order.
func (g *Graph) Names(indices []int) []string {
	names := make([]string, len(indices))
	for k, i := range indices {
		names[k] = g.nodes[i].Name
	}
	return names
}

// Weight returns the correlation between nodes i and j.
func (g *Graph) Weight(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	return g.data[i*g.stride+j]
}

// Weights exposes the weight matrix read-only. The diagonal is zero.
func (g *Graph) Weights() mat.Symmetric { return g.weights }
