package schedule

import "sync/atomic"

// FetchGuard resolves races between overlapping booking-list fetches with a
// monotonic generation counter: last started fetch wins, results from any
// superseded fetch are dropped by the caller.
//
// Usage:
//
//	gen := guard.Begin()
//	list, err := fetch(ctx)
//	if !guard.Accept(gen) {
//		return // a newer fetch superseded this one
//	}
type FetchGuard struct {
	gen atomic.Uint64
}

// Begin marks the start of a new fetch and returns its generation.
func (g *FetchGuard) Begin() uint64 {
	return g.gen.Add(1)
}

// Accept reports whether results from the given generation are still current.
func (g *FetchGuard) Accept(gen uint64) bool {
	return g.gen.Load() == gen
}
