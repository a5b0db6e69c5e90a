package schedule

// DefaultPageSize is the observed booking-history page size.
const DefaultPageSize = 10

// Pager is a pure visible-prefix window over an already-classified,
// already-sorted list. Load-more only ever extends the prefix; it performs
// no re-fetching and is not server-side pagination.
type Pager struct {
	pageSize int
	visible  int
	total    int
}

// NewPager creates a pager over total items showing one page initially.
// A non-positive pageSize falls back to DefaultPageSize.
func NewPager(total, pageSize int) Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total < 0 {
		total = 0
	}
	visible := pageSize
	if visible > total {
		visible = total
	}
	return Pager{pageSize: pageSize, visible: visible, total: total}
}

// Visible returns the current visible prefix length.
func (p Pager) Visible() int {
	return p.visible
}

// HasMore reports whether load-more would reveal additional items.
func (p Pager) HasMore() bool {
	return p.visible < p.total
}

// LoadMore extends the visible prefix by one page, capped at total.
func (p *Pager) LoadMore() {
	p.visible += p.pageSize
	if p.visible > p.total {
		p.visible = p.total
	}
}

// Prefix returns the visible prefix of items according to the pager.
func Prefix[T any](items []T, p Pager) []T {
	n := p.Visible()
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
