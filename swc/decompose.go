package swc

import "fmt"

// sentinel parent index in the relabeled tree
const noParent = int32(-1)

// Split decomposes the tree into linear path segments. Each segment is an
// ordered run of dense node indices (0..len(Nodes)-1, in Nodes order) from
// the root or a branch point down to the next branch point or leaf. Branch
// points and the root are shared endpoints between adjacent segments, so
// the consecutive index pairs over all segments reproduce the tree's
// (node, parent) edges exactly once each.
//
// The tree must be a single rooted tree: exactly one sentinel parent, every
// other parent resolvable, no cycles. Violations yield ErrMalformedTree.
func (t *Tree) Split() ([][]int32, error) {
	n := len(t.Nodes)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty tree", ErrMalformedTree)
	}

	// Relabel arbitrary node IDs into the dense 0-based index space,
	// mapping the "no parent" sentinel out of range.
	denseOf := make(map[int32]int32, n)
	for i, node := range t.Nodes {
		if _, dup := denseOf[node.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node id %d", ErrMalformedTree, node.ID)
		}
		denseOf[node.ID] = int32(i)
	}

	parent := make([]int32, n)
	rootCount := 0
	for i, node := range t.Nodes {
		if node.ParentID < 0 {
			parent[i] = noParent
			rootCount++
			continue
		}
		p, ok := denseOf[node.ParentID]
		if !ok {
			return nil, fmt.Errorf("%w: node %d references undefined parent %d",
				ErrMalformedTree, node.ID, node.ParentID)
		}
		parent[i] = p
	}
	if rootCount != 1 {
		return nil, fmt.Errorf("%w: expected exactly 1 root; got %d", ErrMalformedTree, rootCount)
	}
	if n == 1 {
		// a lone root renders as a degenerate single-point segment
		return [][]int32{{0}}, nil
	}

	// Every parent chain must terminate at the root. A chain that revisits
	// a node sits on a cycle, which the walks below would either loop over
	// or quietly emit as a bogus segment.
	state := make([]int8, n) // 0 unvisited, 1 on current chain, 2 verified
	chain := make([]int32, 0, 16)
	for s := int32(0); s < int32(n); s++ {
		if state[s] != 0 {
			continue
		}
		chain = chain[:0]
		i := s
		for i != noParent && state[i] == 0 {
			state[i] = 1
			chain = append(chain, i)
			i = parent[i]
		}
		if i != noParent && state[i] == 1 {
			return nil, fmt.Errorf("%w: cycle through node %d", ErrMalformedTree, t.Nodes[i].ID)
		}
		for _, j := range chain {
			state[j] = 2
		}
	}

	// Histogram of child references per node: 0 = leaf, 1 = path interior,
	// >= 2 = branch point.
	childCount := make([]int32, n)
	for i := 0; i < n; i++ {
		if parent[i] != noParent {
			childCount[parent[i]]++
		}
	}

	segments := make([][]int32, 0, 8)

	// Walk upward from every leaf and branch point until the next branch
	// point or the root sentinel; each walk yields one segment.
	for eid := int32(0); eid < int32(n); eid++ {
		if childCount[eid] == 1 {
			continue
		}

		segment := []int32{eid}
		i := parent[eid]
		for i != noParent && childCount[i] == 1 {
			segment = append(segment, i)
			i = parent[i]
		}
		if i != noParent {
			segment = append(segment, i)
		}

		// A branching root is its own terminal; its edges are emitted by
		// the walks that stop at it.
		if len(segment) < 2 {
			continue
		}

		// collected leaf-to-root; output is oriented root-to-leaf
		for lo, hi := 0, len(segment)-1; lo < hi; lo, hi = lo+1, hi-1 {
			segment[lo], segment[hi] = segment[hi], segment[lo]
		}
		segments = append(segments, segment)
	}

	return segments, nil
}
