package duotrie

// rightSpineTail walks downlinks through child[1] starting at n until it
// reaches the node whose child[1] is not a downlink, and returns it.
func rightSpineTail(n *Node) *Node {
	for n.child[1].bpos > n.bpos {
		n = n.child[1]
	}
	return n
}

// Destroy tears the tree down in O(n) using a non-recursive funnel
// flatten: the whole structure is threaded into a singly-linked list via
// repeated right-spine grafting, then walked once to free every node. A
// plain recursive free is disallowed by design — trees built from
// adversarial insert orders can be arbitrarily deep, and recursion would
// overflow the call stack.
//
// deleter, if non-nil, is invoked once per node (with its still-valid
// key view) before the node's storage is released. After Destroy
// returns, the tree is empty and ready to be used again without calling
// Init — or may simply be discarded.
func (t *Tree) Destroy(deleter func(n *Node)) {
	hold := t.sentinel.child[0]
	if hold == t.sentinel {
		t.policy.kill()
		return
	}

	sentinel := t.sentinel
	rightSpineTail(hold).child[1] = sentinel

	var dead *Node // singly linked through child[0]
	for hold != sentinel {
		var next *Node
		if hold.child[0].bpos <= hold.bpos {
			next = hold.child[1]
		} else {
			next = hold.child[0]
			rightSpineTail(next).child[1] = hold.child[1]
		}
		hold.bpos = 0
		hold.child[0] = dead
		dead = hold
		hold = next
	}

	for dead != nil {
		n := dead
		dead = dead.child[0]
		if deleter != nil {
			deleter(n)
		}
		t.freeNode(n)
	}

	t.policy.kill()
	Init(t, t.policy)
}
