package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Bucket is one of two mutually exclusive classification groups for a booking
type Bucket string

const (
	BucketUpcoming Bucket = "upcoming"
	BucketHistory  Bucket = "history"
)

var ErrMalformedDate = errors.New("booking date is not a valid YYYY-MM-DD value")

// ClassifiedBooking is a booking routed into a bucket with its parsed date
// and display-formatted fields attached.
type ClassifiedBooking struct {
	Booking

	ParsedDate   time.Time   `json:"-"`
	DisplayDate  string      `json:"display_date"`  // DD/MM/YYYY
	DisplayHours string      `json:"display_hours"` // e.g. "6:00 - 9:00"
	DisplayPrice string      `json:"display_price"`
	Badge        StatusBadge `json:"badge"`
}

// MalformedBooking is a record excluded from both buckets because its date
// failed to parse. The classifier fails closed on these rather than routing
// them into upcoming by default.
type MalformedBooking struct {
	Booking
	Reason string
}

// Classification is the full, unpaged output of a classification pass.
// A separate Pager windows a visible prefix over these lists.
type Classification struct {
	Upcoming  []ClassifiedBooking
	History   []ClassifiedBooking
	Malformed []MalformedBooking
}

// ParseBookingDate parses a YYYY-MM-DD value into a date at midnight in loc.
// Components are parsed individually rather than via locale-sensitive date
// parsing, to avoid off-by-one timezone errors.
func ParseBookingDate(s string, loc *time.Location) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

// Midnight strips the time-of-day component of t in its own location.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Classify partitions bookings into upcoming and history buckets relative to
// now. A booking lands in history when its date is strictly before today or
// its status is terminal; everything else is upcoming. Upcoming sorts
// ascending by date, history descending. Records with unparseable dates are
// excluded from both buckets and reported in Malformed.
//
// Classify is idempotent: the same input always yields identical bucket
// contents and ordering.
func Classify(bookings []Booking, now time.Time) Classification {
	today := Midnight(now)

	var result Classification
	for _, b := range bookings {
		parsed, err := ParseBookingDate(b.Date, now.Location())
		if err != nil {
			result.Malformed = append(result.Malformed, MalformedBooking{Booking: b, Reason: err.Error()})
			continue
		}

		cb := ClassifiedBooking{
			Booking:      b,
			ParsedDate:   parsed,
			DisplayDate:  FormatDisplayDate(parsed),
			DisplayHours: FormatHourRange(b.Hours),
			DisplayPrice: FormatVND(b.Price),
			Badge:        PresentStatus(b.Status),
		}

		if parsed.Before(today) || b.Status.IsTerminal() {
			result.History = append(result.History, cb)
		} else {
			result.Upcoming = append(result.Upcoming, cb)
		}
	}

	sort.SliceStable(result.Upcoming, func(i, j int) bool {
		return result.Upcoming[i].ParsedDate.Before(result.Upcoming[j].ParsedDate)
	})
	sort.SliceStable(result.History, func(i, j int) bool {
		return result.History[i].ParsedDate.After(result.History[j].ParsedDate)
	})

	return result
}
