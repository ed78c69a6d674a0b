package regionclust

// Merge records one step of the agglomeration.
type Merge struct {
	// Step is the 0-based merge number.
	Step int
	// Left and Right are the IDs of the merged clusters; Left held the
	// lower partition position and kept it.
	Left, Right int
	// ID is the ID given to the merged cluster (n + Step).
	ID int
	// Score is the linkage similarity that selected this pair.
	Score float64
	// Size is the number of nodes in the merged cluster.
	Size int
}

// Dendrogram converts merge history into scipy linkage rows:
// [left, right, distance, size], with distance = 1 - score so that more
// correlated merges sit lower in the tree. The history stops at the target
// cluster count, so the result is a truncated tree with len(merges) rows
// rather than n-1.
func Dendrogram(merges []Merge) [][4]float64 {
	if len(merges) == 0 {
		return nil
	}
	rows := make([][4]float64, len(merges))
	for i, m := range merges {
		rows[i] = [4]float64{float64(m.Left), float64(m.Right), 1 - m.Score, float64(m.Size)}
	}
	return rows
}
