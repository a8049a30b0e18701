package duotrie

// Mode selects one of the three traversal shapes. Direction (forward or
// reverse) is orthogonal and set at iterator construction.
type Mode int

const (
	PreOrder Mode = iota
	InOrder
	PostOrder
)

// iterState is one of the five FSM states from §5: HEAD (before the
// first node), DOWN (just entered a node from its parent), UP-C1
// (returned having finished the node's first child), UP-C2 (returned
// having finished both children), TAIL (walk exhausted). These, plus
// the current node and the ancestor cache, are the iterator's entire
// state — a paused iterator can always be resumed from just these
// fields.
type iterState int

const (
	iterHead iterState = iota
	iterDown
	iterUpC1
	iterUpC2
	iterTail
)

// ringCap is the ancestor cache's fixed capacity. It must be a power of
// two; 8 covers the common case cheaply while keeping recovery descents
// rare (amortized one descent per 2^ringCap steps at full depth).
const ringCap = 8

// Iterator walks a Tree in one of six modes: {pre,in,post}-order crossed
// with {forward,reverse}. It is single-threaded, reentrant only via
// Next/Prev, and safe to pause between calls — except that mutating the
// tree mid-walk is forbidden, other than deleting the node a post-order
// walk just yielded.
type Iterator struct {
	tree    *Tree
	root    *Node // nil means "the whole tree"
	mode    Mode
	forward bool

	st   iterState
	node *Node

	ringBuf   [ringCap]*Node
	ringHead  int
	ringCount int

	backward bool // the current walk was started by Prev
}

// NewIterator builds an iterator over tree. If root is non-nil, the walk
// is restricted to root's own downward subtree; otherwise it covers the
// whole tree.
func NewIterator(tree *Tree, root *Node, forward bool, mode Mode) *Iterator {
	it := &Iterator{tree: tree, root: root, mode: mode, forward: forward}
	it.Reset()
	return it
}

// Reset returns the iterator to its pre-walk HEAD state without changing
// its tree, root, direction, or mode.
func (it *Iterator) Reset() {
	it.st = iterHead
	it.node = nil
	it.ringHead = 0
	it.ringCount = 0
	it.backward = false
}

func (it *Iterator) effectiveRoot() *Node {
	if it.root != nil {
		return it.root
	}
	return it.tree.root()
}

// sides returns the (first, second) child-slot visiting order for the
// iterator's own direction: forward is (0,1), reverse is (1,0).
func (it *Iterator) sides() (int, int) {
	if it.forward {
		return 0, 1
	}
	return 1, 0
}

func (it *Iterator) pushRing(n *Node) {
	idx := (it.ringHead + it.ringCount) % ringCap
	it.ringBuf[idx] = n
	if it.ringCount < ringCap {
		it.ringCount++
	} else {
		it.ringHead = (it.ringHead + 1) % ringCap
	}
}

func (it *Iterator) popRing() (*Node, bool) {
	if it.ringCount == 0 {
		return nil, false
	}
	it.ringCount--
	idx := (it.ringHead + it.ringCount) % ringCap
	n := it.ringBuf[idx]
	it.ringBuf[idx] = nil
	return n, true
}

// recoverParent rebuilds the ancestor chain from the iteration root down
// to n by re-descending on n's own key bits, caching every intermediate
// ancestor above the parent along the way. It is the fallback for when the ring has
// evicted the entry a popRing needed. n's key bits must still be valid;
// this cannot recover the parent of a node that was itself deleted
// before the ring could be refilled with its ancestor.
func (it *Iterator) recoverParent(n *Node) (*Node, bool) {
	root := it.effectiveRoot()
	if root == nil || n == root {
		return nil, false
	}
	cur := root
	var parent *Node
	for cur != n {
		parent = cur
		it.pushRing(cur)
		next := cur.child[btoi(getbit(n.data, n.nbit, cur.bpos))]
		if !cur.isDownlink(btoi(getbit(n.data, n.nbit, cur.bpos))) {
			return nil, false
		}
		cur = next
	}
	it.popRing() // the parent is returned, not left in the cache
	return parent, true
}

func (it *Iterator) getParent(n *Node) (*Node, bool) {
	if p, ok := it.popRing(); ok {
		return p, true
	}
	return it.recoverParent(n)
}

func downlinkChild(n *Node, idx int) (*Node, bool) {
	c := n.child[idx]
	if c.bpos > n.bpos {
		return c, true
	}
	return nil, false
}

// ascendPast moves the iterator's focus from the just-completed node n
// up to its parent, classifying the arrival as UP-C1 or UP-C2 depending
// on which of the parent's slots n occupies under (first, second). If n
// is the iteration root, the walk is over.
func (it *Iterator) ascendPast(n *Node, second int) {
	if n == it.effectiveRoot() {
		it.st = iterTail
		it.node = nil
		return
	}
	parent, ok := it.getParent(n)
	if !ok {
		it.st = iterTail
		it.node = nil
		return
	}
	it.node = parent
	if parent.child[second] == n {
		it.st = iterUpC2
	} else {
		it.st = iterUpC1
	}
}

// step runs the shared FSM under an explicit (first, second, mode)
// triple and returns the next yielded node, or nil at TAIL. Next() and
// Prev() both call into this with different parameters rather than
// duplicating the five-state machine twice: per §8's order laws, walking
// with the slots swapped and pre/post-order swapped produces exactly the
// reverse sequence of the unswapped walk, which is what stepping
// backward means.
func (it *Iterator) step(first, second int, mode Mode) *Node {
	for {
		switch it.st {
		case iterHead:
			n := it.effectiveRoot()
			if n == nil {
				it.st = iterTail
				return nil
			}
			it.node = n
			it.st = iterDown

		case iterDown:
			n := it.node
			if mode == PreOrder {
				if c, ok := downlinkChild(n, first); ok {
					it.pushRing(n)
					it.node = c
					it.st = iterDown
					return n
				}
				if c, ok := downlinkChild(n, second); ok {
					it.pushRing(n)
					it.node = c
					it.st = iterDown
					return n
				}
				it.ascendPast(n, second)
				return n
			}
			if c, ok := downlinkChild(n, first); ok {
				it.pushRing(n)
				it.node = c
				it.st = iterDown
				continue
			}
			it.st = iterUpC1

		case iterUpC1:
			n := it.node
			if mode == InOrder {
				if c, ok := downlinkChild(n, second); ok {
					it.pushRing(n)
					it.node = c
					it.st = iterDown
					return n
				}
				it.st = iterUpC2
				return n
			}
			if c, ok := downlinkChild(n, second); ok {
				it.pushRing(n)
				it.node = c
				it.st = iterDown
				continue
			}
			it.st = iterUpC2

		case iterUpC2:
			n := it.node
			if mode == PostOrder {
				it.ascendPast(n, second)
				return n
			}
			it.ascendPast(n, second)

		case iterTail:
			return nil
		}
	}
}

// Next advances the iterator and returns the next node in its
// established (mode, direction), or nil once the walk is exhausted.
func (it *Iterator) Next() *Node {
	first, second := it.sides()
	return it.step(first, second, it.mode)
}

// Prev returns the previously yielded node, walking backward through
// the same (mode, direction) sequence Next() produces. On a fresh
// iterator, or once Next() is exhausted, Prev() starts at HEAD, mirroring
// the way a fresh iterator's first Next() starts the walk — its first
// yield is then the last node of the forward sequence. Once that
// backward walk has passed the first node, Prev() returns nil.
func (it *Iterator) Prev() *Node {
	if it.st == iterTail && !it.backward {
		it.Reset()
	}
	it.backward = true
	first, second := it.sides()
	mode := it.mode
	switch mode {
	case PreOrder:
		mode = PostOrder
	case PostOrder:
		mode = PreOrder
	}
	return it.step(second, first, mode)
}
