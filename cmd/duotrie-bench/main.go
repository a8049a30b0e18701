// Command duotrie-bench exercises the duotrie core end to end: bulk
// insert, lookup, prefix, remove, all six iteration modes, and the
// virtual-memory arena, printing basic timings. It is a consumer of the
// library, not part of its public surface.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/TomTonic/duotrie"
	"github.com/TomTonic/duotrie/arena"
	"github.com/TomTonic/duotrie/dump"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	words, err := loadWords()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load word list")
	}

	a := arena.New(log.With().Str("component", "arena").Logger())
	tree := duotrie.New(a.Policy())

	if err := bulkInsert(tree, words); err != nil {
		log.Error().Err(err).Msg("bulk insert reported failures")
	}
	log.Info().Int("words", len(words)).Int("stored", tree.Len()).Msg("insert complete")

	runLookups(log, tree, words)
	runPrefixes(log, tree, words)
	runIterationModes(log, tree)

	if err := dump.Text(os.Stdout, tree); err != nil {
		log.Error().Err(err).Msg("text dump failed")
	}

	removed := 0
	for _, w := range words[:len(words)/2] {
		if tree.Remove([]byte(w), uint16(len(w)*8)) {
			removed++
		}
	}
	log.Info().Int("removed", removed).Int("remaining", tree.Len()).Msg("partial removal complete")

	if err := duotrie.Validate(tree); err != nil {
		log.Error().Err(err).Msg("validate failed after removal")
	}

	tree.Destroy(nil)
}

func loadWords() ([]string, error) {
	if len(os.Args) > 1 {
		return readWordFile(os.Args[1])
	}
	return []string{"even", "evenly", "a", "b", "ab", "abc", "abcd", "solo", "xyzzy", "zzyzx", "prefix", "prefixed"}, nil
}

func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return words, nil
}

// bulkInsert inserts every word, aggregating every allocation or
// duplicate failure into a single error rather than aborting on the
// first one.
func bulkInsert(tree *duotrie.Tree, words []string) error {
	var errs *multierror.Error
	for _, w := range words {
		if _, ok := tree.Insert([]byte(w), uint16(len(w)*8)); !ok {
			errs = multierror.Append(errs, fmt.Errorf("insert %q: allocation failed or key already present", w))
		}
	}
	return errs.ErrorOrNil()
}

func runLookups(log zerolog.Logger, tree *duotrie.Tree, words []string) {
	start := time.Now()
	hits := 0
	for _, w := range words {
		if tree.Lookup([]byte(w), uint16(len(w)*8)) != nil {
			hits++
		}
	}
	log.Info().Int("hits", hits).Dur("elapsed", time.Since(start)).Msg("lookup pass")
}

func runPrefixes(log zerolog.Logger, tree *duotrie.Tree, words []string) {
	if len(words) == 0 {
		return
	}
	start := time.Now()
	found := 0
	for _, w := range words {
		query := []byte(w + "____")
		if tree.Prefix(query, uint16(len(query)*8)) != nil {
			found++
		}
	}
	log.Info().Int("found", found).Dur("elapsed", time.Since(start)).Msg("prefix pass")
}

func runIterationModes(log zerolog.Logger, tree *duotrie.Tree) {
	modes := []struct {
		name string
		mode duotrie.Mode
	}{{"pre", duotrie.PreOrder}, {"in", duotrie.InOrder}, {"post", duotrie.PostOrder}}
	for _, m := range modes {
		for _, fwd := range []bool{true, false} {
			it := duotrie.NewIterator(tree, nil, fwd, m.mode)
			count := 0
			for n := it.Next(); n != nil; n = it.Next() {
				count++
			}
			log.Info().Str("mode", m.name).Bool("forward", fwd).Int("visited", count).Msg("iteration pass")
		}
	}
}
