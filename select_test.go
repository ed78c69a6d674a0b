package regionclust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// literalGraph is the four-region example: regions 1..4 map to indices 0..3
// with w[1][2] = w[1][3] = w[2][3] = 1.0 and w[3][4] = 0.5.
func literalGraph(tb testing.TB) *Graph {
	tb.Helper()
	return mustGraph(tb, symmetric(4, map[[2]int]float64{
		{0, 1}: 1.0,
		{0, 2}: 1.0,
		{1, 2}: 1.0,
		{2, 3}: 0.5,
	}))
}

func TestSelectBestPair_Literal(t *testing.T) {
	g := literalGraph(t)
	p := mustPartition(t, 4, [][]int{{0, 1}, {2}, {3}})

	i, j, score, err := SelectBestPair(p, g)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
	assert.Equal(t, 1.0, score)

	next, err := p.Merge(i, j)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, next.Members())
}

func TestSelectBestPair_TieBreak(t *testing.T) {
	tests := []struct {
		name   string
		ties   map[[2]int]float64
		wantLo int
		wantHi int
	}{
		{
			name:   "earlier row wins",
			ties:   map[[2]int]float64{{0, 1}: 0.9, {2, 3}: 0.9},
			wantLo: 0, wantHi: 1,
		},
		{
			name:   "same row, lower partner wins",
			ties:   map[[2]int]float64{{0, 2}: 0.9, {1, 2}: 0.9},
			wantLo: 0, wantHi: 2,
		},
		{
			name:   "row order beats lower partner",
			ties:   map[[2]int]float64{{0, 3}: 0.9, {1, 2}: 0.9},
			wantLo: 1, wantHi: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGraph(t, symmetric(4, tt.ties))
			p := NewPartition(4)
			for run := 0; run < 10; run++ {
				i, j, score, err := SelectBestPair(p, g)
				require.NoError(t, err)
				assert.Equal(t, tt.wantLo, i)
				assert.Equal(t, tt.wantHi, j)
				assert.Equal(t, 0.9, score)
			}
		})
	}
}

func TestSelectBestPair_NegativeCorrelations(t *testing.T) {
	g := mustGraph(t, symmetric(3, map[[2]int]float64{
		{0, 1}: -0.7,
		{0, 2}: -0.2,
		{1, 2}: -0.9,
	}))
	i, j, score, err := SelectBestPair(NewPartition(3), g)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 2}, [2]int{i, j})
	assert.Equal(t, -0.2, score)
}

func TestSelectBestPair_InsufficientClusters(t *testing.T) {
	g := literalGraph(t)
	p := mustPartition(t, 4, [][]int{{0, 1, 2, 3}})

	_, _, _, err := SelectBestPair(p, g)
	require.ErrorIs(t, err, ErrInsufficientClusters)

	_, _, _, err = SelectBestPairParallel(p, g, 4)
	require.ErrorIs(t, err, ErrInsufficientClusters)

	_, _, _, err = selectNearestNodes(p, g)
	require.ErrorIs(t, err, ErrInsufficientClusters)
}

func TestSelectNearestNodes(t *testing.T) {
	g := mustGraph(t, symmetric(5, map[[2]int]float64{
		{0, 1}: 0.9,
		{1, 4}: 0.8,
		{2, 3}: 0.6,
		{0, 2}: 0.7,
	}))
	// Node pair (0,1) is inside one cluster and must be skipped.
	p := mustPartition(t, 5, [][]int{{2, 3}, {0, 1}, {4}})

	i, j, score, err := selectNearestNodes(p, g)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, j)
	assert.Equal(t, 0.8, score)
}

func TestSelectNearestNodes_TieBreak(t *testing.T) {
	// (0,3) and (1,2) tie; node pair (1,2) is visited first.
	g := mustGraph(t, symmetric(4, map[[2]int]float64{{0, 3}: 0.5, {1, 2}: 0.5}))
	i, j, _, err := selectNearestNodes(NewPartition(4), g)
	require.NoError(t, err)
	assert.Equal(t, [2]int{1, 2}, [2]int{i, j})
}
