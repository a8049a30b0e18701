package dump

import (
	"strings"
	"testing"

	"github.com/TomTonic/duotrie"
)

func buildWords(t *testing.T, words []string) *duotrie.Tree {
	t.Helper()
	tree := duotrie.New(nil)
	for _, w := range words {
		if _, ok := tree.Insert([]byte(w), uint16(len(w)*8)); !ok {
			t.Fatalf("insert(%q) failed", w)
		}
	}
	return tree
}

func TestTextVisitsEveryNode(t *testing.T) {
	words := []string{"even", "evenly", "a", "b", "ab", "abc", "solo"}
	tree := buildWords(t, words)
	var sb strings.Builder
	if err := Text(&sb, tree); err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != len(words) {
		t.Fatalf("Text emitted %d lines, want %d", len(lines), len(words))
	}
	for _, w := range words {
		if !strings.Contains(sb.String(), hexOf(w)) {
			t.Fatalf("Text output missing key %q (hex %s): %s", w, hexOf(w), sb.String())
		}
	}
}

func TestTextEmptyTree(t *testing.T) {
	tree := duotrie.New(nil)
	var sb strings.Builder
	if err := Text(&sb, tree); err != nil {
		t.Fatalf("Text returned error: %v", err)
	}
	if sb.Len() != 0 {
		t.Fatalf("Text on an empty tree should produce no output, got %q", sb.String())
	}
}

func TestDOTIsWellFormedAndCoversEveryNode(t *testing.T) {
	words := []string{"even", "evenly", "a", "b", "ab"}
	tree := buildWords(t, words)
	var sb strings.Builder
	if err := DOT(&sb, tree); err != nil {
		t.Fatalf("DOT returned error: %v", err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "digraph duotrie {\n") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("DOT output is not a well-formed digraph block: %q", out)
	}
	for _, w := range words {
		if !strings.Contains(out, hexOf(w)) {
			t.Fatalf("DOT output missing key %q (hex %s)", w, hexOf(w))
		}
	}
}

func TestDOTEmptyTree(t *testing.T) {
	tree := duotrie.New(nil)
	var sb strings.Builder
	if err := DOT(&sb, tree); err != nil {
		t.Fatalf("DOT returned error: %v", err)
	}
	if sb.String() != "digraph duotrie {\n}\n" {
		t.Fatalf("DOT on an empty tree should emit an empty digraph block, got %q", sb.String())
	}
}

func hexOf(s string) string {
	const digits = "0123456789abcdef"
	out := make([]byte, 0, len(s)*2)
	for _, b := range []byte(s) {
		out = append(out, digits[b>>4], digits[b&0xF])
	}
	return string(out)
}
