package regionclust

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// symmetric builds an n×n matrix from upper-triangle entries keyed {i, j}.
// Unlisted entries are zero.
func symmetric(n int, entries map[[2]int]float64) [][]float64 {
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	for k, v := range entries {
		w[k[0]][k[1]] = v
		w[k[1]][k[0]] = v
	}
	return w
}

// randomWeights returns a symmetric n×n matrix of correlations in [-1, 1)
// with a unit diagonal. levels > 0 quantizes the weights to that many
// distinct values so that ties are common.
func randomWeights(n int, seed int64, levels int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		w[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Float64()*2 - 1
			if levels > 0 {
				v = float64(rng.Intn(levels)) / float64(levels)
			}
			w[i][j] = v
			w[j][i] = v
		}
	}
	return w
}

func namedNodes(n int) []Node {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("ROI %d", i+1)
	}
	return NodesFromNames(names, nil)
}

func mustGraph(tb testing.TB, weights [][]float64) *Graph {
	tb.Helper()
	g, err := NewGraph(namedNodes(len(weights)), weights)
	require.NoError(tb, err)
	return g
}

func mustPartition(tb testing.TB, n int, members [][]int) Partition {
	tb.Helper()
	p, err := NewPartitionFromClusters(n, members)
	require.NoError(tb, err)
	return p
}
