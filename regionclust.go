package regionclust

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// DefaultTargetClusters is the number of clusters produced by default, the
// usual count of large-scale functional networks.
const DefaultTargetClusters = 8

// Config controls a clustering run.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// TargetClusters is the number of clusters left when merging stops.
	// Must be in [1, n]. Default: 8.
	TargetClusters int

	// Linkage chooses how the next pair to merge is picked.
	// Default: LinkageAverage.
	Linkage Linkage

	// Workers bounds the goroutines used to score cluster pairs within one
	// merge round. Only average linkage fans out. Results do not depend on
	// it. 0 means runtime.NumCPU(). Default: 0.
	Workers int

	// Logger receives one debug entry per merge and a run summary.
	// Default: a no-op logger.
	Logger *zap.Logger
}

// Result is the outcome of a clustering run.
type Result struct {
	// Partition is the final set of TargetClusters clusters.
	Partition Partition

	// Labels maps each node index to the position of its cluster in
	// Partition.
	Labels []int

	// Merges is the merge history, n - TargetClusters entries in order.
	Merges []Merge

	// Stats holds per-cluster cohesion figures in Partition order.
	Stats []ClusterStats
}

// Dendrogram returns the merge history as scipy linkage rows.
func (r *Result) Dendrogram() [][4]float64 { return Dendrogram(r.Merges) }

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		TargetClusters: DefaultTargetClusters,
		Linkage:        LinkageAverage,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
// TargetClusters is not defaulted: zero is an invalid target, not "unset".
func applyDefaults(cfg *Config) {
	if cfg.Linkage == "" {
		cfg.Linkage = LinkageAverage
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

// validateConfig checks cfg against a graph of n nodes.
func validateConfig(cfg *Config, n int) error {
	if cfg.TargetClusters < 1 || cfg.TargetClusters > n {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidTarget, cfg.TargetClusters, n)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: Workers must be >= 0, got %d", ErrInvalidConfig, cfg.Workers)
	}
	if _, err := ParseLinkage(string(cfg.Linkage)); err != nil {
		return err
	}
	return nil
}

// Run clusters g into target clusters with average linkage and returns the
// final partition. It is the canonical entry point; use ClusterGraph for the
// other settings.
func Run(g *Graph, target int) (Partition, error) {
	cfg := DefaultConfig()
	cfg.TargetClusters = target
	cfg.Workers = 1
	res, err := ClusterGraph(g, cfg)
	if err != nil {
		return Partition{}, err
	}
	return res.Partition, nil
}

// ClusterGraph merges the singleton partition of g one pair at a time until
// cfg.TargetClusters clusters remain. Exactly n - TargetClusters merges are
// performed; the output depends only on g and the linkage.
func ClusterGraph(g *Graph, cfg Config) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrMalformedGraph)
	}
	applyDefaults(&cfg)
	n := g.Len()
	if err := validateConfig(&cfg, n); err != nil {
		return nil, err
	}

	selectPair, err := selectorFor(cfg.Linkage, cfg.Workers)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger.With(zap.String("linkage", string(cfg.Linkage)))
	p := NewPartition(n)
	merges := make([]Merge, 0, n-cfg.TargetClusters)

	for step := 0; step < n-cfg.TargetClusters; step++ {
		i, j, score, err := selectPair(p, g)
		if err != nil {
			return nil, fmt.Errorf("regionclust: merge step %d: %w", step, err)
		}

		left, right := p.Cluster(i), p.Cluster(j)
		next, err := p.Merge(i, j)
		if err != nil {
			return nil, fmt.Errorf("regionclust: merge step %d: %w", step, err)
		}
		merged := next.Cluster(i)

		merges = append(merges, Merge{
			Step:  step,
			Left:  left.ID,
			Right: right.ID,
			ID:    merged.ID,
			Score: score,
			Size:  merged.Size(),
		})
		log.Debug("merged clusters",
			zap.Int("step", step),
			zap.Int("left", left.ID),
			zap.Int("right", right.ID),
			zap.Float64("score", score),
			zap.Int("size", merged.Size()),
			zap.Int("remaining", next.Len()),
		)
		p = next
	}

	labels, err := p.Labels()
	if err != nil {
		return nil, err
	}

	stats, err := ComputeClusterStats(g, p)
	if err != nil {
		return nil, err
	}

	log.Info("clustering complete",
		zap.Int("nodes", n),
		zap.Int("clusters", p.Len()),
		zap.Int("merges", len(merges)),
	)

	return &Result{
		Partition: p,
		Labels:    labels,
		Merges:    merges,
		Stats:     stats,
	}, nil
}
