package duotrie

// Policy is the allocator vtable for a tree's key-byte storage. It is the
// only coupling between the core and a storage strategy: the default
// policy is the host heap, and an arena/VM-backed allocator (see the
// sibling arena package) is a drop-in replacement.
//
// Alloc must return a slice of exactly nbytes bytes, or nil on failure.
// Free is optional; when nil, the policy defers releasing memory to Kill,
// which runs once at tree teardown (e.g. an arena that is reset in bulk
// rather than freed node by node). Kill is optional too — the default
// heap policy needs neither.
type Policy struct {
	Alloc func(nbytes int) []byte
	Free  func(data []byte)
	Kill  func()
}

// defaultPolicy allocates key storage on the host heap and never frees
// eagerly; the garbage collector reclaims it once the tree does.
func defaultPolicy() *Policy {
	return &Policy{
		Alloc: func(nbytes int) []byte { return make([]byte, nbytes) },
	}
}

func (p *Policy) alloc(nbytes int) []byte {
	if p == nil || p.Alloc == nil {
		return make([]byte, nbytes)
	}
	return p.Alloc(nbytes)
}

func (p *Policy) free(data []byte) {
	if p == nil || p.Free == nil {
		return
	}
	p.Free(data)
}

func (p *Policy) kill() {
	if p == nil || p.Kill == nil {
		return
	}
	p.Kill()
}
