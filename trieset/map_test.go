package trieset

import (
	"testing"

	set3 "github.com/TomTonic/Set3"
)

func TestPutAndGetValues(t *testing.T) {
	m := New[int]()
	m.PutValue(FromString("a"), 1)
	m.PutValue(FromString("a"), 2)
	m.PutValue(FromString("b"), 3)

	got := m.GetValuesFor(FromString("a"))
	if !got.Equals(set3.From(1, 2)) {
		t.Fatalf("values for a should equal {1,2}")
	}
	if m.Size() != 2 {
		t.Fatalf("size = %d, want 2", m.Size())
	}
	if !m.ContainsKey(FromString("b")) {
		t.Fatalf("ContainsKey(b) should be true")
	}
	if m.ContainsKey(FromString("c")) {
		t.Fatalf("ContainsKey(c) should be false")
	}
}

func TestRemoveValueKeepsKey(t *testing.T) {
	m := New[string]()
	key := FromString("fruit")
	m.PutValue(key, "apple")
	m.PutValue(key, "pear")
	m.RemoveValue(key, "apple")

	if !m.ContainsKey(key) {
		t.Fatalf("key should still exist after removing one value")
	}
	got := m.GetValuesFor(key)
	if !got.Equals(set3.From("pear")) {
		t.Fatalf("values for fruit should equal {pear}")
	}
}

func TestRemoveKeyDropsEverything(t *testing.T) {
	m := New[int]()
	key := FromString("gone")
	m.PutValue(key, 1)
	m.RemoveKey(key)
	if m.ContainsKey(key) {
		t.Fatalf("key should be gone after RemoveKey")
	}
	if !m.GetValuesFor(key).Equals(set3.Empty[int]()) {
		t.Fatalf("values for a removed key should be empty")
	}
}

func TestGetAllValuesUnion(t *testing.T) {
	m := New[int]()
	m.PutValue(FromString("a"), 1)
	m.PutValue(FromString("b"), 2)
	m.PutValue(FromString("c"), 2)

	all := m.GetAllValues()
	if !all.Equals(set3.From(1, 2)) {
		t.Fatalf("all values should equal {1,2}")
	}
}

func TestKeysAndClear(t *testing.T) {
	m := New[int]()
	words := []string{"even", "evenly", "a", "b"}
	for _, w := range words {
		m.PutValue(FromString(w), 1)
	}
	keys := m.Keys()
	if len(keys) != len(words) {
		t.Fatalf("Keys() returned %d entries, want %d", len(keys), len(words))
	}
	m.Clear()
	if m.Size() != 0 {
		t.Fatalf("size after Clear = %d, want 0", m.Size())
	}
	if len(m.Keys()) != 0 {
		t.Fatalf("Keys() after Clear should be empty")
	}
	// the map must be usable again after Clear
	m.PutValue(FromString("reborn"), 7)
	if !m.ContainsKey(FromString("reborn")) {
		t.Fatalf("map should accept new entries after Clear")
	}
}

func TestFromStringNormalizesToNFC(t *testing.T) {
	// "e" + combining acute (NFD) normalizes to the precomposed "é" (NFC).
	nfd := "é"
	nfc := "é"
	if !FromString(nfd).Equal(FromString(nfc)) {
		t.Fatalf("FromString should normalize %q and %q to the same key", nfd, nfc)
	}
}
