package schedule

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchGuardLastFetchWins(t *testing.T) {
	var g FetchGuard

	first := g.Begin()
	assert.True(t, g.Accept(first))

	second := g.Begin()
	assert.False(t, g.Accept(first), "superseded fetch must be dropped")
	assert.True(t, g.Accept(second))
}

func TestFetchGuardConcurrentBegins(t *testing.T) {
	var g FetchGuard
	var wg sync.WaitGroup

	gens := make([]uint64, 50)
	for i := range gens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			gens[i] = g.Begin()
		}(i)
	}
	wg.Wait()

	// Generations are unique; exactly one remains current.
	seen := make(map[uint64]bool, len(gens))
	accepted := 0
	for _, gen := range gens {
		assert.False(t, seen[gen], "generation %d issued twice", gen)
		seen[gen] = true
		if g.Accept(gen) {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
}
