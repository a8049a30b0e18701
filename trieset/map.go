package trieset

import (
	"sync"

	set3 "github.com/TomTonic/Set3"

	"github.com/TomTonic/duotrie"
)

// Map is a thread-safe multi-map from Key to a set of values, backed by
// a duotrie.Tree. The trie itself is single-threaded (per its own
// contract); Map supplies the external synchronization that contract
// requires for shared use, the same way the teacher's own multimap
// wraps its array-based store in a sync.RWMutex.
type Map[T comparable] struct {
	mu      sync.RWMutex
	tree    *duotrie.Tree
	payload map[*duotrie.Node]*set3.Set3[T]
}

// New returns an empty Map.
func New[T comparable]() *Map[T] {
	return &Map[T]{
		tree:    duotrie.New(nil),
		payload: make(map[*duotrie.Node]*set3.Set3[T]),
	}
}

// PutValue adds v to the set of values stored under key, creating the
// key's entry if it does not already exist.
func (m *Map[T]) PutValue(key Key, v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, inserted := m.tree.Insert(key, key.Bits())
	if inserted {
		m.payload[n] = set3.Empty[T]()
	}
	m.payload[n].Add(v)
}

// RemoveValue removes v from key's value set, if both are present. The
// key's entry itself is left in place even if its value set becomes
// empty; use RemoveKey to drop the entry entirely.
func (m *Map[T]) RemoveValue(key Key, v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.tree.Lookup(key, key.Bits())
	if n == nil {
		return
	}
	if s, ok := m.payload[n]; ok {
		s.Remove(v)
	}
}

// ContainsKey reports whether key has an entry in the map.
func (m *Map[T]) ContainsKey(key Key) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tree.Lookup(key, key.Bits()) != nil
}

// RemoveKey deletes key and its entire value set from the map.
func (m *Map[T]) RemoveKey(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.tree.Lookup(key, key.Bits())
	if n == nil {
		return
	}
	if !m.tree.Evict(n) {
		return
	}
	delete(m.payload, n)
}

// GetValuesFor returns a clone of key's value set, or an empty set if
// key is absent.
func (m *Map[T]) GetValuesFor(key Key) *set3.Set3[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := m.tree.Lookup(key, key.Bits())
	if n == nil {
		return set3.EmptyWithCapacity[T](0)
	}
	if s, ok := m.payload[n]; ok {
		return s.Clone()
	}
	return set3.EmptyWithCapacity[T](0)
}

// GetAllValues returns the union of every key's value set.
func (m *Map[T]) GetAllValues() *set3.Set3[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := set3.Empty[T]()
	for _, s := range m.payload {
		result.AddAll(s)
	}
	return result
}

// Size returns the number of distinct keys stored.
func (m *Map[T]) Size() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(m.tree.Len())
}

// Keys returns every stored key. Order follows the trie's own pre-order
// iteration, not lexicographic order (the underlying trie makes no such
// guarantee).
func (m *Map[T]) Keys() []Key {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Key, 0, m.tree.Len())
	it := duotrie.NewIterator(m.tree, nil, true, duotrie.PreOrder)
	for n := it.Next(); n != nil; n = it.Next() {
		out = append(out, Key(n.Data()))
	}
	return out
}

// Clear removes every key and value from the map.
func (m *Map[T]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tree.Destroy(nil)
	m.payload = make(map[*duotrie.Node]*set3.Set3[T])
}
