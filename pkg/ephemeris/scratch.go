package ephemeris

import "sync"

// scratch is a per-calculation arena mirroring the numeric buffers a raw
// ephemeris computation writes into: a position array (longitude, latitude,
// distance, and their speeds), a cusp array, an angle array, and an error
// text buffer.
//
// Arenas are checked out from a pool for the duration of one calculation and
// zeroed before use, so a calculation can never observe stale data left by a
// prior, unrelated calculation that happened to reuse the same arena.
type scratch struct {
	positions [6]float64  // lon, lat, dist, lon speed, lat speed, dist speed
	cusps     [13]float64 // house cusps, 1-based like the classical tables
	angles    [10]float64 // ascendant, midheaven and derived angles
	errText   [256]byte   // provider diagnostic text
}

// reset zeroes every buffer in the arena.
func (s *scratch) reset() {
	s.positions = [6]float64{}
	s.cusps = [13]float64{}
	s.angles = [10]float64{}
	s.errText = [256]byte{}
}

// scratchPool recycles arenas across calculations.
var scratchPool = sync.Pool{
	New: func() any { return new(scratch) },
}

// checkoutScratch returns a zeroed arena from the pool.
func checkoutScratch() *scratch {
	s := scratchPool.Get().(*scratch)
	s.reset()
	return s
}

// releaseScratch returns an arena to the pool.
func releaseScratch(s *scratch) {
	scratchPool.Put(s)
}
