package regionclust

import "fmt"

// Cluster is a non-empty group of node indices. ID is its dendrogram label:
// singletons use their node index and the cluster formed by merge step s
// uses n+s, matching scipy's linkage numbering.
type Cluster struct {
	ID      int
	Members []int
}

// Size returns the number of member nodes.
func (c Cluster) Size() int { return len(c.Members) }

// Partition is an ordered sequence of disjoint clusters covering every node
// exactly once. Order is insertion/merge order. A Partition value is never
// modified in place: Merge returns a new one and member slices are never
// written after construction.
type Partition struct {
	clusters []Cluster
	n        int
	nextID   int
}

// NewPartition returns the initial partition of n singleton clusters.
func NewPartition(n int) Partition {
	clusters := make([]Cluster, n)
	for i := range clusters {
		clusters[i] = Cluster{ID: i, Members: []int{i}}
	}
	return Partition{clusters: clusters, n: n, nextID: n}
}

// NewPartitionFromClusters builds a partition over n nodes from explicit
// member lists. Merged cluster IDs start at n. The result is checked with
// Validate.
func NewPartitionFromClusters(n int, members [][]int) (Partition, error) {
	clusters := make([]Cluster, len(members))
	nextID := n
	for i, m := range members {
		owned := make([]int, len(m))
		copy(owned, m)
		id := nextID
		if len(owned) == 1 {
			id = owned[0]
		} else {
			nextID++
		}
		clusters[i] = Cluster{ID: id, Members: owned}
	}
	p := Partition{clusters: clusters, n: n, nextID: nextID}
	if err := p.Validate(); err != nil {
		return Partition{}, err
	}
	return p, nil
}

// Len returns the number of clusters.
func (p Partition) Len() int { return len(p.clusters) }

// NodeCount returns the number of nodes the partition covers.
func (p Partition) NodeCount() int { return p.n }

// Cluster returns the cluster at position i.
func (p Partition) Cluster(i int) Cluster { return p.clusters[i] }

// Clusters returns a copy of the cluster list. Member slices are shared and
// must not be modified.
func (p Partition) Clusters() []Cluster {
	out := make([]Cluster, len(p.clusters))
	copy(out, p.clusters)
	return out
}

// Members returns a copy of each cluster's member list, in partition order.
func (p Partition) Members() [][]int {
	out := make([][]int, len(p.clusters))
	for i, c := range p.clusters {
		out[i] = append([]int(nil), c.Members...)
	}
	return out
}

// Merge unions clusters i and j into the lower of the two positions and
// removes the higher one. Members of the lower cluster come first. The
// receiver is left unchanged.
func (p Partition) Merge(i, j int) (Partition, error) {
	if i == j || i < 0 || j < 0 || i >= len(p.clusters) || j >= len(p.clusters) {
		return Partition{}, fmt.Errorf("regionclust: cannot merge clusters %d and %d of %d", i, j, len(p.clusters))
	}
	if i > j {
		i, j = j, i
	}

	lo, hi := p.clusters[i], p.clusters[j]
	members := make([]int, 0, len(lo.Members)+len(hi.Members))
	members = append(members, lo.Members...)
	members = append(members, hi.Members...)

	clusters := make([]Cluster, 0, len(p.clusters)-1)
	clusters = append(clusters, p.clusters[:j]...)
	clusters = append(clusters, p.clusters[j+1:]...)
	clusters[i] = Cluster{ID: p.nextID, Members: members}

	return Partition{clusters: clusters, n: p.n, nextID: p.nextID + 1}, nil
}

// Locate returns the position of the cluster that owns node with a linear
// scan over the clusters.
func (p Partition) Locate(node int) (int, error) {
	for i, c := range p.clusters {
		for _, m := range c.Members {
			if m == node {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w: node %d", ErrNodeNotFound, node)
}

// Labels returns, for each node 0..n-1, the position of its cluster. It is
// the one-pass side table for loops that would otherwise call Locate per
// node; nodes without an owner are reported with ErrNodeNotFound.
func (p Partition) Labels() ([]int, error) {
	labels := make([]int, p.n)
	for i := range labels {
		labels[i] = -1
	}
	for ci, c := range p.clusters {
		for _, m := range c.Members {
			if m >= 0 && m < p.n {
				labels[m] = ci
			}
		}
	}
	for node, l := range labels {
		if l == -1 {
			return nil, fmt.Errorf("%w: node %d", ErrNodeNotFound, node)
		}
	}
	return labels, nil
}

// Validate checks that every node in 0..n-1 appears in exactly one
// non-empty cluster.
func (p Partition) Validate() error {
	seen := make([]bool, p.n)
	count := 0
	for ci, c := range p.clusters {
		if len(c.Members) == 0 {
			return fmt.Errorf("regionclust: cluster %d is empty", ci)
		}
		for _, m := range c.Members {
			if m < 0 || m >= p.n {
				return fmt.Errorf("regionclust: cluster %d has node %d outside [0, %d)", ci, m, p.n)
			}
			if seen[m] {
				return fmt.Errorf("regionclust: node %d appears in more than one cluster", m)
			}
			seen[m] = true
			count++
		}
	}
	if count != p.n {
		for node, ok := range seen {
			if !ok {
				return fmt.Errorf("%w: node %d", ErrNodeNotFound, node)
			}
		}
	}
	return nil
}
