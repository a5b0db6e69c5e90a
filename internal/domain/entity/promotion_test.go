package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testPromotion(start, end time.Time) *Promotion {
	active := true
	return &Promotion{
		Code:            "SUMMER10",
		DiscountPercent: 10,
		StartDate:       start,
		EndDate:         end,
		IsActive:        &active,
	}
}

func TestPromotionIsValidOnRange(t *testing.T) {
	p := testPromotion(
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	)

	assert.True(t, p.IsValidOn(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.IsValidOn(time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.IsValidOn(time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)))

	assert.False(t, p.IsValidOn(time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.IsValidOn(time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)))
}

// Booking dates arrive as local midnights while the stored bounds are UTC
// midnights; validity must follow the calendar day the player asked for, not
// the UTC instant that midnight happens to fall on.
func TestPromotionIsValidOnLocalMidnight(t *testing.T) {
	hcm := time.FixedZone("Asia/Ho_Chi_Minh", 7*60*60)
	p := testPromotion(
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	)

	// 2026-01-05 00:00 +07 is 2026-01-04 17:00 UTC, still the first valid day.
	assert.True(t, p.IsValidOn(time.Date(2026, 1, 5, 0, 0, 0, 0, hcm)))
	assert.True(t, p.IsValidOn(time.Date(2026, 1, 10, 0, 0, 0, 0, hcm)))

	// 2026-01-11 00:00 +07 is 2026-01-10 17:00 UTC, one day past the range.
	assert.False(t, p.IsValidOn(time.Date(2026, 1, 11, 0, 0, 0, 0, hcm)))
}

func TestPromotionIsValidOnInactive(t *testing.T) {
	p := testPromotion(
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
	)
	inactive := false
	p.IsActive = &inactive

	assert.False(t, p.IsValidOn(time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)))
}
