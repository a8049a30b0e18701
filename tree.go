// Package duotrie implements a mutable, in-memory compressed radix-2
// trie (a Patricia tree) keyed by arbitrary-length bit strings. Every
// node is dual-use: simultaneously a routing node and a terminal key
// holder, with no separate leaf/internal distinction and no parent
// pointers. The tree is single-threaded; callers sharing one across
// goroutines must supply their own external synchronization.
package duotrie

// Tree is a compressed radix-2 trie over bit strings. The zero value is
// not ready to use; call Init first.
type Tree struct {
	sentinel *Node
	policy   *Policy
	count    int
}

// Init installs policy (or the default heap policy, if nil), resets the
// tree's accounting, and rebuilds the sentinel self-loops. It may be
// called again on a Tree that has already been Destroyed, or to discard
// an in-progress tree without calling Destroy.
func Init(t *Tree, policy *Policy) {
	if policy == nil {
		policy = defaultPolicy()
	}
	t.policy = policy
	t.count = 0
	t.sentinel = newSentinel()
}

// New returns a freshly initialized Tree. A nil policy selects the
// default heap allocator.
func New(policy *Policy) *Tree {
	t := &Tree{}
	Init(t, policy)
	return t
}

// Len returns the number of keys currently stored.
func (t *Tree) Len() int { return t.count }

// root returns the tree's actual root node (root.child[0] of the
// sentinel), or nil if the tree is empty.
func (t *Tree) root() *Node {
	if t.sentinel.child[0] == t.sentinel {
		return nil
	}
	return t.sentinel.child[0]
}

// Root is the exported form of root, for callers outside the package
// that need to start their own structural walk.
func (t *Tree) Root() *Node { return t.root() }

// freeNode releases a node's key storage through the policy. The Node
// struct itself is left for the garbage collector; only the (possibly
// arena-backed) data buffer is the policy's concern.
func (t *Tree) freeNode(n *Node) {
	t.policy.free(n.data)
}
