package regionclust

import "errors"

// Sentinel errors returned by the clustering core. Callers match them with
// errors.Is; call sites wrap them with the offending values.
var (
	// ErrInvalidTarget is returned when the target cluster count is < 1 or
	// exceeds the number of nodes. No merge is performed.
	ErrInvalidTarget = errors.New("regionclust: invalid target cluster count")

	// ErrInsufficientClusters is returned when best-pair selection is asked
	// to choose from fewer than two clusters.
	ErrInsufficientClusters = errors.New("regionclust: fewer than two clusters to select from")

	// ErrNodeNotFound means a node has no owning cluster. It can only occur
	// when the partition invariant has been broken.
	ErrNodeNotFound = errors.New("regionclust: node not found in partition")

	// ErrMalformedGraph is returned by graph construction for non-square or
	// asymmetric matrices, node/matrix size mismatches, bad node indices and
	// non-finite weights.
	ErrMalformedGraph = errors.New("regionclust: malformed correlation graph")

	// ErrInvalidConfig is returned for Config fields outside their domain.
	ErrInvalidConfig = errors.New("regionclust: invalid config")
)
