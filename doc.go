// Package regionclust groups brain regions of a functional-connectivity
// graph into a fixed number of clusters by agglomerative merging.
//
// Every region starts in its own cluster. Each round scores every pair of
// clusters by the mean correlation over all cross pairs of regions (average
// linkage), merges the best pair, and repeats until the target count is
// reached. The run is deterministic: ties go to the first pair in a fixed
// scan order, and parallel scoring reduces to the same pair.
//
// Basic usage:
//
//	g, err := regionclust.NewGraph(regionclust.NodesFromNames(names, centers), weights)
//	p, err := regionclust.Run(g, 8)
//	// p.Cluster(i).Members lists the node indices of cluster i
//
// With explicit settings:
//
//	cfg := regionclust.DefaultConfig()
//	cfg.Workers = 4
//	result, err := regionclust.ClusterGraph(g, cfg)
//	// result.Labels[node] is the cluster position of node
//	// result.Merges is the merge history, result.Dendrogram() in scipy form
//
// # Linkage
//
// LinkageAverage is the default. LinkageSingle instead merges the clusters
// holding the single most correlated pair of regions not yet clustered
// together; it produces different, typically chain-like, clusterings.
package regionclust
