package duotrie

import "fmt"

// Validate walks the tree's structural edges and checks the invariants
// that must hold after any sequence of Insert/Evict/Remove calls:
// downlink monotonicity, the two-incoming-reference rule, and self-link
// side-bit consistency. It returns the first violation found, or nil.
// Validate is a diagnostic for tests and tooling, not part of the hot
// insert/lookup/delete path.
func Validate(t *Tree) error {
	nodes := make([]*Node, 0, t.count)
	var walk func(n *Node, parentBpos uint16) error
	walk = func(n *Node, parentBpos uint16) error {
		if n.bpos <= parentBpos {
			return fmt.Errorf("downlink monotonicity violated: bpos %d does not exceed parent bpos %d", n.bpos, parentBpos)
		}
		nodes = append(nodes, n)
		for i := 0; i < 2; i++ {
			if n.isDownlink(i) {
				if err := walk(n.child[i], n.bpos); err != nil {
					return err
				}
			} else if n.child[i] == n {
				want := btoi(getbit(n.data, n.nbit, n.bpos))
				if want != i {
					return fmt.Errorf("side-bit inconsistency: self-link sits in slot %d but key bit at bpos %d is %d", i, n.bpos, want)
				}
			}
		}
		return nil
	}
	if root := t.root(); root != nil {
		if err := walk(root, t.sentinel.bpos); err != nil {
			return err
		}
	}
	if len(nodes) != t.count {
		return fmt.Errorf("reachable node count %d does not match tree count %d", len(nodes), t.count)
	}

	refs := make(map[*Node]int, len(nodes)+1)
	refs[t.sentinel.child[0]]++
	for _, n := range nodes {
		refs[n.child[0]]++
		refs[n.child[1]]++
	}
	for _, n := range nodes {
		if refs[n] != 2 {
			return fmt.Errorf("node at bpos %d has %d incoming references, want 2", n.bpos, refs[n])
		}
	}
	return nil
}
