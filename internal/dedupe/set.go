// Package dedupe is an in-memory string-set deduplicator, adapted from
// the teacher's channel-draining Dedupe/MapBackend pair for the miner's
// demo-scale working sets (see SPEC_FULL.md §10: the teacher's on-disk
// LevelDB backend has no caller here, since nothing in this module
// produces an unbounded stream of results).
package dedupe

import "runtime/debug"

// Set deduplicates string keys, such as canonical clique-id tuples or
// seen neighbor pairs, built and torn down within a single miner call.
type Set struct {
	storage map[string]struct{}
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{storage: make(map[string]struct{})}
}

// Upsert adds elem to the set; a no-op if already present.
func (s *Set) Upsert(elem string) {
	s.storage[elem] = struct{}{}
}

// Contains reports whether elem was previously upserted.
func (s *Set) Contains(elem string) bool {
	_, ok := s.storage[elem]
	return ok
}

// Len returns the number of distinct elements seen.
func (s *Set) Len() int {
	return len(s.storage)
}

// Cleanup releases the set's storage. By default the GC does not return
// freed map buckets to the OS immediately; debug.FreeOSMemory forces it,
// matching the teacher's MapBackend.Cleanup.
func (s *Set) Cleanup() {
	s.storage = nil
	debug.FreeOSMemory()
}
