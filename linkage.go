package regionclust

import "fmt"

// Linkage selects how the next pair of clusters to merge is chosen.
type Linkage string

const (
	// LinkageAverage merges the two clusters with the greatest mean cross
	// correlation. This is the default.
	LinkageAverage Linkage = "average"

	// LinkageSingle merges the two clusters that contain the most correlated
	// pair of nodes lying in different clusters. It yields different
	// clusterings from LinkageAverage and is kept as a separate strategy.
	LinkageSingle Linkage = "single"
)

// ParseLinkage maps a configuration string onto a Linkage.
func ParseLinkage(s string) (Linkage, error) {
	switch l := Linkage(s); l {
	case LinkageAverage, LinkageSingle:
		return l, nil
	case "":
		return LinkageAverage, nil
	default:
		return "", fmt.Errorf("%w: unknown linkage %q", ErrInvalidConfig, s)
	}
}

// pairSelector picks the positions i < j of the next clusters to merge.
type pairSelector func(p Partition, g *Graph) (i, j int, score float64, err error)

// selectorFor resolves a Linkage and worker count into a selection step.
func selectorFor(linkage Linkage, workers int) (pairSelector, error) {
	switch linkage {
	case LinkageAverage:
		if workers > 1 {
			return func(p Partition, g *Graph) (int, int, float64, error) {
				return SelectBestPairParallel(p, g, workers)
			}, nil
		}
		return SelectBestPair, nil
	case LinkageSingle:
		return selectNearestNodes, nil
	default:
		return nil, fmt.Errorf("%w: unknown linkage %q", ErrInvalidConfig, linkage)
	}
}
