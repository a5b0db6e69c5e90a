package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerInitialWindow(t *testing.T) {
	p := NewPager(25, 10)
	assert.Equal(t, 10, p.Visible())
	assert.True(t, p.HasMore())

	small := NewPager(3, 10)
	assert.Equal(t, 3, small.Visible())
	assert.False(t, small.HasMore())

	empty := NewPager(0, 10)
	assert.Zero(t, empty.Visible())
	assert.False(t, empty.HasMore())
}

func TestPagerLoadMoreMonotonic(t *testing.T) {
	p := NewPager(25, 10)

	p.LoadMore()
	assert.Equal(t, 20, p.Visible())
	assert.True(t, p.HasMore())

	p.LoadMore()
	assert.Equal(t, 25, p.Visible())
	assert.False(t, p.HasMore())

	// Load-more past the end stays capped.
	p.LoadMore()
	assert.Equal(t, 25, p.Visible())
}

func TestPagerDefaults(t *testing.T) {
	p := NewPager(15, 0)
	assert.Equal(t, DefaultPageSize, p.Visible())

	neg := NewPager(-1, 10)
	assert.Zero(t, neg.Visible())
}

func TestPrefix(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	p := NewPager(len(items), 2)
	assert.Equal(t, []string{"a", "b"}, Prefix(items, p))

	p.LoadMore()
	assert.Equal(t, []string{"a", "b", "c", "d"}, Prefix(items, p))

	p.LoadMore()
	assert.Equal(t, items, Prefix(items, p))

	// A pager built over a larger total never over-slices the actual list.
	big := NewPager(100, 50)
	assert.Equal(t, items, Prefix(items, big))
}
