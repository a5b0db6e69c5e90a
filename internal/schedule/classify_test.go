package schedule

import (
	"testing"
	"time"

	"court-booking-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 1, 15, 14, 30, 0, 0, time.Local)

func dateStr(t time.Time) string {
	return t.Format("2006-01-02")
}

func TestParseBookingDate(t *testing.T) {
	parsed, err := ParseBookingDate("2026-01-05", time.Local)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local), parsed)

	for _, bad := range []string{"", "2026-01", "2026/01/05", "2026-13-05", "2026-01-32", "abcd-01-05", "2026-xx-05", "2026-01-yy"} {
		_, err := ParseBookingDate(bad, time.Local)
		assert.ErrorIs(t, err, ErrMalformedDate, "input %q", bad)
	}
}

func TestClassifyDateRule(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)

	// A past date lands in history regardless of status.
	for _, status := range []entity.BookingStatus{
		entity.BookingStatusPending,
		entity.BookingStatusConfirmed,
		entity.BookingStatusCompleted,
		entity.BookingStatusCancelled,
		entity.BookingStatusRejected,
	} {
		result := Classify([]Booking{{ID: "b1", Date: dateStr(yesterday), Status: status}}, testNow)
		require.Len(t, result.History, 1, "status %s", status)
		assert.Empty(t, result.Upcoming)
	}
}

func TestClassifyStatusRule(t *testing.T) {
	tomorrow := testNow.AddDate(0, 0, 1)

	// Terminal statuses land in history regardless of date.
	for _, status := range []entity.BookingStatus{
		entity.BookingStatusCompleted,
		entity.BookingStatusCancelled,
		entity.BookingStatusRejected,
	} {
		result := Classify([]Booking{{ID: "b1", Date: dateStr(tomorrow), Status: status}}, testNow)
		require.Len(t, result.History, 1, "status %s", status)
		assert.Empty(t, result.Upcoming)
	}

	// The alternate cancellation spelling normalizes to a terminal status.
	result := Classify([]Booking{{ID: "b1", Date: dateStr(tomorrow), Status: entity.NormalizeStatus("CANCELED")}}, testNow)
	require.Len(t, result.History, 1)

	// Non-terminal statuses on today or later stay upcoming.
	for _, status := range []entity.BookingStatus{
		entity.BookingStatusPending,
		entity.BookingStatusConfirmed,
	} {
		result := Classify([]Booking{{ID: "b1", Date: dateStr(testNow), Status: status}}, testNow)
		require.Len(t, result.Upcoming, 1, "status %s", status)
		assert.Empty(t, result.History)
	}
}

func TestClassifyScenario(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	tomorrow := testNow.AddDate(0, 0, 1)

	bookings := []Booking{
		{ID: "past-confirmed", Date: dateStr(yesterday), Status: entity.BookingStatusConfirmed},
		{ID: "today-pending", Date: dateStr(testNow), Status: entity.BookingStatusPending},
		{ID: "future-cancelled", Date: dateStr(tomorrow), Status: entity.BookingStatusCancelled},
	}

	result := Classify(bookings, testNow)

	require.Len(t, result.Upcoming, 1)
	assert.Equal(t, "today-pending", result.Upcoming[0].ID)

	// History sorts descending: tomorrow's cancelled booking before yesterday's.
	require.Len(t, result.History, 2)
	assert.Equal(t, "future-cancelled", result.History[0].ID)
	assert.Equal(t, "past-confirmed", result.History[1].ID)
}

func TestClassifySortOrder(t *testing.T) {
	bookings := []Booking{
		{ID: "u3", Date: dateStr(testNow.AddDate(0, 0, 3)), Status: entity.BookingStatusPending},
		{ID: "u1", Date: dateStr(testNow.AddDate(0, 0, 1)), Status: entity.BookingStatusPending},
		{ID: "u2", Date: dateStr(testNow.AddDate(0, 0, 2)), Status: entity.BookingStatusConfirmed},
		{ID: "h1", Date: dateStr(testNow.AddDate(0, 0, -1)), Status: entity.BookingStatusCompleted},
		{ID: "h3", Date: dateStr(testNow.AddDate(0, 0, -3)), Status: entity.BookingStatusCompleted},
		{ID: "h2", Date: dateStr(testNow.AddDate(0, 0, -2)), Status: entity.BookingStatusCompleted},
	}

	result := Classify(bookings, testNow)

	require.Len(t, result.Upcoming, 3)
	assert.Equal(t, "u1", result.Upcoming[0].ID)
	assert.Equal(t, "u2", result.Upcoming[1].ID)
	assert.Equal(t, "u3", result.Upcoming[2].ID)

	require.Len(t, result.History, 3)
	assert.Equal(t, "h1", result.History[0].ID)
	assert.Equal(t, "h2", result.History[1].ID)
	assert.Equal(t, "h3", result.History[2].ID)
}

func TestClassifyMalformedDateFailsClosed(t *testing.T) {
	bookings := []Booking{
		{ID: "good", Date: dateStr(testNow), Status: entity.BookingStatusPending},
		{ID: "bad", Date: "not-a-date", Status: entity.BookingStatusPending},
	}

	result := Classify(bookings, testNow)

	require.Len(t, result.Upcoming, 1)
	assert.Equal(t, "good", result.Upcoming[0].ID)
	assert.Empty(t, result.History)

	require.Len(t, result.Malformed, 1)
	assert.Equal(t, "bad", result.Malformed[0].ID)
	assert.NotEmpty(t, result.Malformed[0].Reason)
}

func TestClassifyIdempotent(t *testing.T) {
	bookings := []Booking{
		{ID: "a", Date: dateStr(testNow.AddDate(0, 0, 1)), Status: entity.BookingStatusPending},
		{ID: "b", Date: dateStr(testNow.AddDate(0, 0, 1)), Status: entity.BookingStatusConfirmed},
		{ID: "c", Date: dateStr(testNow.AddDate(0, 0, -1)), Status: entity.BookingStatusCompleted},
	}

	first := Classify(bookings, testNow)
	second := Classify(bookings, testNow)
	assert.Equal(t, first, second)

	// Equal dates keep input order (stable sort).
	require.Len(t, first.Upcoming, 2)
	assert.Equal(t, "a", first.Upcoming[0].ID)
	assert.Equal(t, "b", first.Upcoming[1].ID)
}

func TestClassifyEmptyInput(t *testing.T) {
	result := Classify(nil, testNow)
	assert.Empty(t, result.Upcoming)
	assert.Empty(t, result.History)
	assert.Empty(t, result.Malformed)
}

func TestClassifyAttachesDisplayFields(t *testing.T) {
	bookings := []Booking{{
		ID:     "b1",
		Date:   "2026-01-05",
		Hours:  entity.HourSet{6, 7, 8},
		Status: entity.BookingStatusConfirmed,
		Price:  decimalFromInt(150000),
	}}

	result := Classify(bookings, testNow)
	require.Len(t, result.History, 1) // 2026-01-05 is before testNow

	cb := result.History[0]
	assert.Equal(t, "05/01/2026", cb.DisplayDate)
	assert.Equal(t, "6:00 - 9:00", cb.DisplayHours)
	assert.Equal(t, "150.000đ", cb.DisplayPrice)
	assert.Equal(t, ColorSuccess, cb.Badge.Color)
}
