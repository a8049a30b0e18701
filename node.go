package duotrie

// Node is the dual-use node: every node is simultaneously a routing node
// and a terminal key holder. There is no separate leaf or internal node
// type, and no parent pointer — the two child slots double as downward
// structural edges and threaded uplinks back toward the root.
//
// Edge classification (the central invariant): for a node p and i in
// {0,1}, p.child[i] is a downlink iff p.child[i].bpos > p.bpos; otherwise
// it is an uplink (possibly a self-link, when p.child[i] == p).
type Node struct {
	child [2]*Node
	bpos  uint16
	nbit  uint16
	data  []byte
}

// Bpos returns the node's branch bit position (unity-based). 0 only for
// the sentinel.
func (n *Node) Bpos() uint16 { return n.bpos }

// NBit returns the key length in bits.
func (n *Node) NBit() uint16 { return n.nbit }

// Data returns a copy of the ⌈NBit()/8⌉ packed key bytes. Callers must
// not mutate a node's child slots or bpos; Data is returned as a copy so
// callers cannot mutate the node's storage either.
func (n *Node) Data() []byte {
	full := (int(n.nbit) + 7) / 8
	out := make([]byte, full)
	copy(out, n.data[:full])
	return out
}

// isDownlink reports whether the edge from p to p.child[i] is a true
// structural edge rather than a threaded uplink.
func (p *Node) isDownlink(i int) bool {
	return p.child[i].bpos > p.bpos
}

// IsDownlink is the exported form of isDownlink, for callers outside the
// package (dump) that need to walk the structural edges directly.
func (p *Node) IsDownlink(i int) bool { return p.isDownlink(i) }

// Child returns the node's slot-i child. Combine with IsDownlink to tell
// a true structural edge from a threaded uplink.
func (p *Node) Child(i int) *Node { return p.child[i] }

// newSentinel builds the permanent root node. Its self-loops make both
// child slots uplinks to itself, so there is no empty-tree special case.
func newSentinel() *Node {
	s := &Node{bpos: 0}
	s.child[0] = s
	s.child[1] = s
	return s
}

// newNode allocates a real node for key (keyBytes, nbit) at branch
// position bpos, sourcing its data buffer from policy. Returns nil if the
// policy fails to provide storage.
func newNode(policy *Policy, keyBytes []byte, nbit uint16, bpos uint16) *Node {
	full := (int(nbit) + 7) / 8
	buf := policy.alloc(full + 1) // + one trailing zero byte, not counted in nbit
	if buf == nil {
		return nil
	}
	copy(buf, keyBytes[:full])
	return &Node{bpos: bpos, nbit: nbit, data: buf}
}
