package duotrie

// isParentOf reports whether a directly references b through either
// child slot.
func isParentOf(a, b *Node) bool {
	return a.child[0] == b || a.child[1] == b
}

// otherIdx returns the index of a's child slot that does NOT hold b.
func otherIdx(a, b *Node) int {
	if a.child[0] == b {
		return 1
	}
	return 0
}

// childIdx returns the index of a's child slot that holds b.
func childIdx(a, b *Node) int {
	if a.child[1] == b {
		return 1
	}
	return 0
}

// deletePath re-derives, via a single descent driven by (data, nbit),
// the full node sequence from the sentinel down to the point where the
// search for that key terminates. The final element is the deletion
// target's own uplink predecessor's destination — i.e. the node itself,
// when (data, nbit) genuinely belongs to the tree.
func (t *Tree) deletePath(data []byte, nbit uint16) []*Node {
	path := []*Node{t.sentinel}
	cur := t.sentinel.child[0]
	for {
		path = append(path, cur)
		prev := path[len(path)-2]
		if cur.bpos <= prev.bpos {
			break
		}
		cur = cur.child[btoi(getbit(data, nbit, cur.bpos))]
	}
	return path
}

// deleteNode removes x from the tree using the single-descent, four
// pointer algorithm of §4.7: bypass the predecessor, then (unless x is
// its own predecessor) splice the predecessor into x's structural slot.
// Returns false, leaving the tree unchanged, if x does not actually
// belong to this tree.
func (t *Tree) deleteNode(x *Node) bool {
	path := t.deletePath(x.data, x.nbit)
	n := len(path)
	if path[n-1] != x {
		return false
	}
	p := path[n-2]
	g := path[n-3]

	var z *Node
	if x != p {
		for i := 1; i < n; i++ {
			if path[i] == x && path[i].bpos > path[i-1].bpos {
				z = path[i-1]
				break
			}
		}
	}

	// Step I — bypass: remove p from the descent path (or, if p == x,
	// remove x itself directly).
	g.child[childIdx(g, p)] = p.child[otherIdx(p, x)]

	// Step II — replace: p takes over x's structural position.
	if x != p {
		z.child[childIdx(z, x)] = p
		p.child[0] = x.child[0]
		p.child[1] = x.child[1]
		p.bpos = x.bpos
	}

	t.freeNode(x)
	t.count--
	return true
}

// Evict removes node x from the tree by its own identity rather than by
// key. It returns false without mutating the tree if x is nil or does
// not belong to this tree — a node from another tree, or one already
// removed, is detected this way rather than corrupting either tree.
func (t *Tree) Evict(x *Node) bool {
	if x == nil || x == t.sentinel {
		return false
	}
	return t.deleteNode(x)
}

// Remove deletes the key (key, nbit) if present, returning whether a key
// was actually removed.
func (t *Tree) Remove(key []byte, nbit uint16) bool {
	x := t.Lookup(key, nbit)
	if x == nil {
		return false
	}
	return t.deleteNode(x)
}
