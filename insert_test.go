package duotrie

import "testing"

func TestInsertMembershipIdempotence(t *testing.T) {
	tree := New(nil)
	k, nb := strKey("gopher")
	first, ok := tree.Insert(k, nb)
	if !ok || first == nil {
		t.Fatalf("first insert should succeed")
	}
	second, ok := tree.Insert(k, nb)
	if ok {
		t.Fatalf("second insert of the same key should report inserted=false")
	}
	if second != first {
		t.Fatalf("repeated insert must return the same node pointer")
	}
	if tree.Len() != 1 {
		t.Fatalf("tree length = %d, want 1", tree.Len())
	}
}

func TestInsertAndValidateManyKeys(t *testing.T) {
	tree := New(nil)
	words := []string{"even", "evenly", "a", "b", "ab", "abc", "abcd", "solo", "xyzzy", "zzyzx"}
	for _, w := range words {
		k, nb := strKey(w)
		if _, ok := tree.Insert(k, nb); !ok {
			t.Fatalf("insert(%q) should succeed", w)
		}
	}
	if err := Validate(tree); err != nil {
		t.Fatalf("validate failed after inserts: %v", err)
	}
	if tree.Len() != len(words) {
		t.Fatalf("tree length = %d, want %d", tree.Len(), len(words))
	}
	for _, w := range words {
		k, nb := strKey(w)
		if tree.Lookup(k, nb) == nil {
			t.Fatalf("lookup(%q) should find the key", w)
		}
	}
}

func TestScenarioEvenEvenly(t *testing.T) {
	tree := New(nil)
	for _, w := range []string{"even", "evenly"} {
		k, nb := strKey(w)
		if _, ok := tree.Insert(k, nb); !ok {
			t.Fatalf("insert(%q) should succeed", w)
		}
	}
	if tree.Lookup([]byte("even"), uint16(len("even")*8)) == nil {
		t.Fatalf("lookup(even) should not be nil")
	}
	evenly, _ := strKey("evenly")
	if tree.Lookup(evenly, uint16(len(evenly)*8)) == nil {
		t.Fatalf("lookup(evenly) should not be nil")
	}

	evenlyXX, nbXX := strKey("evenlyXX")
	got := tree.Prefix(evenlyXX, nbXX)
	if got == nil || !equkey(got.data, got.nbit, evenly, uint16(len(evenly)*8)) {
		t.Fatalf("prefix(evenlyXX) should be node(evenly)")
	}

	evenZZ, nbZZ := strKey("evenZZ")
	even, nbEven := strKey("even")
	got = tree.Prefix(evenZZ, nbZZ)
	if got == nil || !equkey(got.data, got.nbit, even, nbEven) {
		t.Fatalf("prefix(evenZZ) should be node(even)")
	}

	eve, nbEve := strKey("eve")
	if tree.Lookup(eve, nbEve) != nil {
		t.Fatalf("lookup(eve) should be nil: eve is not a stored key")
	}
}

func TestScenarioSoloKey(t *testing.T) {
	tree := New(nil)
	k, nb := strKey("solo")
	node, ok := tree.Insert(k, nb)
	if !ok || node == nil {
		t.Fatalf("insert(solo) should succeed")
	}
	if err := Validate(tree); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if tree.Lookup(k, nb) != node {
		t.Fatalf("lookup(solo) should return the inserted node")
	}
}

func TestEmptyTreeLookupAndPrefix(t *testing.T) {
	tree := New(nil)
	k, nb := strKey("anything")
	if tree.Lookup(k, nb) != nil {
		t.Fatalf("lookup on empty tree should be nil")
	}
	if tree.Prefix(k, nb) != nil {
		t.Fatalf("prefix on empty tree should be nil")
	}
}

func TestInsertEmptyKeyIntoEmptyTreeThenDuplicate(t *testing.T) {
	tree := New(nil)
	node, ok := tree.Insert(nil, 0)
	if !ok || node == nil {
		t.Fatalf("first insert of the empty key must succeed")
	}
	if err := Validate(tree); err != nil {
		t.Fatalf("validate failed after inserting the empty key: %v", err)
	}
	again, ok := tree.Insert(nil, 0)
	if ok || again != node {
		t.Fatalf("second insert of the empty key must report inserted=false and return the same node")
	}
	if tree.Lookup(nil, 0) != node {
		t.Fatalf("lookup of the empty key should find the stored node")
	}
}
