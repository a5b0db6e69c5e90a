package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"court-booking-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// FormatDisplayDate renders a date as DD/MM/YYYY.
func FormatDisplayDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatHourRange renders a reserved hour set as a single contiguous range
// "min:00 - (max+1):00", assuming each slot spans one hour. This is the
// legacy approximation: a non-contiguous set like {6, 9} renders as
// "6:00 - 10:00". Use FormatHourSpans for the true union. An empty set
// renders as an empty placeholder.
func FormatHourRange(hours entity.HourSet) string {
	if len(hours) == 0 {
		return ""
	}
	min, max := hours[0], hours[0]
	for _, h := range hours[1:] {
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	return fmt.Sprintf("%d:00 - %d:00", min, max+1)
}

// FormatHourSpans renders the exact union of reserved hours as comma-joined
// contiguous ranges, e.g. {6,7,9} -> "6:00 - 8:00, 9:00 - 10:00".
func FormatHourSpans(hours entity.HourSet) string {
	if len(hours) == 0 {
		return ""
	}

	sorted := make([]int, len(hours))
	copy(sorted, hours)
	sort.Ints(sorted)

	var spans []string
	start, end := sorted[0], sorted[0]
	for _, h := range sorted[1:] {
		if h == end || h == end+1 {
			if h == end+1 {
				end = h
			}
			continue
		}
		spans = append(spans, fmt.Sprintf("%d:00 - %d:00", start, end+1))
		start, end = h, h
	}
	spans = append(spans, fmt.Sprintf("%d:00 - %d:00", start, end+1))

	return strings.Join(spans, ", ")
}

// FormatVND renders a monetary amount in Vietnamese dong with dot thousand
// separators, e.g. 150000 -> "150.000đ".
func FormatVND(amount decimal.Decimal) string {
	s := amount.Truncate(0).String()

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	formatted := b.String()
	if negative {
		formatted = "-" + formatted
	}
	return formatted + "đ"
}
