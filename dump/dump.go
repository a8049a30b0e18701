// Package dump renders a duotrie.Tree as human- or GraphViz-readable
// text. Both forms consume only the tree's public iteration and
// downlink-test surface; neither reaches into package duotrie internals.
package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/TomTonic/duotrie"
)

// Text writes an indented pre-order listing of tree to w: one line per
// node, indentation depth tracked purely from the strictly-increasing
// bpos sequence pre-order iteration produces (a node's indentation
// increases every time its bpos exceeds the node above it, and pops back
// to match whenever a later bpos falls at or below an ancestor's).
func Text(w io.Writer, tree *duotrie.Tree) error {
	it := duotrie.NewIterator(tree, nil, true, duotrie.PreOrder)
	var stack []uint16
	for n := it.Next(); n != nil; n = it.Next() {
		for len(stack) > 0 && stack[len(stack)-1] >= n.Bpos() {
			stack = stack[:len(stack)-1]
		}
		indent := strings.Repeat(".", len(stack))
		if _, err := fmt.Fprintf(w, "%s[bpos %d] nbit=%d key=%x\n", indent, n.Bpos(), n.NBit(), n.Data()); err != nil {
			return err
		}
		stack = append(stack, n.Bpos())
	}
	return nil
}

// DOT writes tree as a GraphViz digraph: one node per stored key, one
// edge per downlink, solid edges for the slot-0 child and dashed for
// slot-1, matching the left/right child convention used throughout the
// core package. Like Text, it walks via pre-order iteration rather than
// recursion, so it stays O(1) stack regardless of tree depth.
func DOT(w io.Writer, tree *duotrie.Tree) error {
	if _, err := fmt.Fprintln(w, "digraph duotrie {"); err != nil {
		return err
	}
	it := duotrie.NewIterator(tree, nil, true, duotrie.PreOrder)
	style := [2]string{"solid", "dashed"}
	for n := it.Next(); n != nil; n = it.Next() {
		if err := dotNode(w, n, style); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}

func dotNode(w io.Writer, n *duotrie.Node, style [2]string) error {
	if _, err := fmt.Fprintf(w, "  \"%s\" [label=\"bpos=%d\\nkey=%x\"];\n", nodeID(n), n.Bpos(), n.Data()); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		if !n.IsDownlink(i) {
			continue
		}
		c := n.Child(i)
		if _, err := fmt.Fprintf(w, "  \"%s\" -> \"%s\" [style=%s];\n", nodeID(n), nodeID(c), style[i]); err != nil {
			return err
		}
	}
	return nil
}

func nodeID(n *duotrie.Node) string {
	return fmt.Sprintf("n%p", n)
}
