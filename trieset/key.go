// Package trieset layers a payload-bearing multi-map on top of the
// duotrie core, the way the teacher repo's own multimap package
// layers a set3.Set3 payload atop a plain key: duotrie stores only
// bitstrings, so trieset pairs each stored node with its payload in a
// side table keyed by node identity.
package trieset

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key is the byte-string form fed to the underlying trie: 8*len(Key) bits.
type Key []byte

// FromBytes copies b into a Key. A nil b yields an empty, non-nil Key.
func FromBytes(b []byte) Key {
	if b == nil {
		return []byte{}
	}
	kb := make([]byte, len(b))
	copy(kb, b)
	return Key(kb)
}

// FromString normalizes s to Unicode NFC and returns its UTF-8 bytes as
// a Key, matching the teacher's own FromString convention.
func FromString(s string) Key {
	return FromBytes([]byte(norm.NFC.String(s)))
}

// Bits returns the key's length in bits, the unit duotrie operates on.
func (k Key) Bits() uint16 { return uint16(len(k) * 8) }

// Equal reports whether k and other have identical contents.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the key as comma-separated uppercase hex bytes.
func (k Key) String() string {
	if len(k) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	const hex = "0123456789ABCDEF"
	for i, b := range k {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}
