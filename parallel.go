package regionclust

import "golang.org/x/sync/errgroup"

// parallelMinClusters is the smallest partition for which
// SelectBestPairParallel fans out; below it the goroutine overhead exceeds
// the scoring work.
const parallelMinClusters = 16

// SelectBestPairParallel is SelectBestPair with the pair scoring spread over
// at most workers goroutines. Each row of the scan (one higher position hi and
// every lower position) is scored independently, and the row winners are then
// reduced in ascending row order with the same strict comparison, so the
// chosen pair and score are bitwise identical to SelectBestPair.
//
// Falls back to SelectBestPair if workers <= 1 or the partition is small.
func SelectBestPairParallel(p Partition, g *Graph, workers int) (i, j int, score float64, err error) {
	c := p.Len()
	if workers <= 1 || c < parallelMinClusters {
		return SelectBestPair(p, g)
	}

	rows := make([]pairChoice, c)
	var eg errgroup.Group
	eg.SetLimit(workers)
	for hi := 1; hi < c; hi++ {
		hi := hi
		eg.Go(func() error {
			rows[hi] = scanRows(p.clusters, g, hi, hi+1)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return -1, -1, 0, err
	}

	best := noPair
	for hi := 1; hi < c; hi++ {
		if rows[hi].beats(best) {
			best = rows[hi]
		}
	}
	return best.lo, best.hi, best.score, nil
}
