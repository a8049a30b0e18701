// Package arena provides a virtual-memory-backed bump allocator that
// plugs into duotrie.Policy, trading per-node heap allocations for a
// single large mmap reservation.
package arena

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/TomTonic/duotrie"
)

// defaultReservation is the initial mmap size; it holds over a hundred
// thousand 9-byte key buffers (an 8-byte key plus its trailing zero
// byte) before the first grow.
const defaultReservation = 1 << 20 // 1 MiB

// VMArena is a bump allocator over one or more anonymous mmap regions.
// It never frees individual allocations (duotrie's Policy.Free is left
// nil, matching "free == null means the allocator defers release to
// kill"); the whole reservation is released at Kill.
type VMArena struct {
	log     zerolog.Logger
	regions [][]byte
	cur     []byte
	used    int
}

// New returns a VMArena logging to log (the zero Logger discards
// everything, matching zerolog's own default).
func New(log zerolog.Logger) *VMArena {
	return &VMArena{log: log}
}

// Policy returns a duotrie.Policy backed by this arena. Free is left
// nil: individual node buffers are never reclaimed early, only at Kill.
func (a *VMArena) Policy() *duotrie.Policy {
	return &duotrie.Policy{
		Alloc: a.alloc,
		Kill:  a.kill,
	}
}

func (a *VMArena) alloc(n int) []byte {
	if a.cur == nil || a.used+n > len(a.cur) {
		if err := a.grow(n); err != nil {
			a.log.Error().Err(err).Int("requested", n).Msg("arena: grow failed")
			return nil
		}
	}
	buf := a.cur[a.used : a.used+n : a.used+n]
	a.used += n
	return buf
}

func (a *VMArena) grow(n int) error {
	size := defaultReservation
	for size < n {
		size *= 2
	}
	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return fmt.Errorf("arena: mmap %d bytes: %w", size, err)
	}
	a.log.Debug().Int("bytes", size).Int("regions", len(a.regions)+1).Msg("arena: mmap")
	a.regions = append(a.regions, region)
	a.cur = region
	a.used = 0
	return nil
}

func (a *VMArena) kill() {
	for _, r := range a.regions {
		if err := unix.Munmap(r); err != nil {
			a.log.Error().Err(err).Msg("arena: munmap failed")
		}
	}
	a.log.Debug().Int("regions", len(a.regions)).Msg("arena: munmap")
	a.regions = nil
	a.cur = nil
	a.used = 0
}
