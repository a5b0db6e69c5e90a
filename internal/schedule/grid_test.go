package schedule

import (
	"testing"

	"court-booking-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridEmptyBookings(t *testing.T) {
	grid := BuildGrid(nil, DefaultWindow)

	require.Len(t, grid, 20)
	assert.Equal(t, 6, grid[0].Hour)
	assert.Equal(t, 25, grid[len(grid)-1].Hour)
	for _, slot := range grid {
		assert.Equal(t, SlotAvailable, slot.State, "hour %d", slot.Hour)
	}
}

func TestBuildGridMarksBookedHours(t *testing.T) {
	bookings := []Booking{
		{ID: "b1", Hours: entity.HourSet{6, 7}},
		{ID: "b2", Hours: entity.HourSet{10}},
	}

	grid := BuildGrid(bookings, DefaultWindow)
	require.Len(t, grid, 20)

	booked := map[int]bool{6: true, 7: true, 10: true}
	for _, slot := range grid {
		if booked[slot.Hour] {
			assert.Equal(t, SlotBooked, slot.State, "hour %d", slot.Hour)
		} else {
			assert.Equal(t, SlotAvailable, slot.State, "hour %d", slot.Hour)
		}
	}
}

func TestBuildGridUnionAcrossBookings(t *testing.T) {
	// Overlapping hour sets still produce a single booked slot per hour.
	bookings := []Booking{
		{ID: "b1", Hours: entity.HourSet{8, 9}},
		{ID: "b2", Hours: entity.HourSet{9, 10}},
	}

	grid := BuildGrid(bookings, Window{StartHour: 8, EndHour: 12})
	require.Len(t, grid, 4)
	assert.Equal(t, SlotBooked, grid[0].State)
	assert.Equal(t, SlotBooked, grid[1].State)
	assert.Equal(t, SlotBooked, grid[2].State)
	assert.Equal(t, SlotAvailable, grid[3].State)
}

func TestBuildGridInvalidWindow(t *testing.T) {
	assert.Nil(t, BuildGrid(nil, Window{StartHour: 10, EndHour: 10}))
	assert.Nil(t, BuildGrid(nil, Window{StartHour: 10, EndHour: 6}))
}

func TestActiveBooking(t *testing.T) {
	bookings := []Booking{
		{ID: "morning", Hours: entity.HourSet{6, 7}},
		{ID: "evening", Hours: entity.HourSet{19, 20}},
	}

	active, claims := ActiveBooking(bookings, 19)
	require.NotNil(t, active)
	assert.Equal(t, "evening", active.ID)
	assert.Equal(t, 1, claims)

	active, claims = ActiveBooking(bookings, 12)
	assert.Nil(t, active)
	assert.Zero(t, claims)

	active, claims = ActiveBooking(nil, 12)
	assert.Nil(t, active)
	assert.Zero(t, claims)
}

func TestActiveBookingConflictingClaims(t *testing.T) {
	// Two bookings claiming the same hour is a data inconsistency: first
	// match in input order wins, the claimant count surfaces the conflict.
	bookings := []Booking{
		{ID: "first", Hours: entity.HourSet{9}},
		{ID: "second", Hours: entity.HourSet{9, 10}},
	}

	active, claims := ActiveBooking(bookings, 9)
	require.NotNil(t, active)
	assert.Equal(t, "first", active.ID)
	assert.Equal(t, 2, claims)
}

func TestActiveBookingEmptyHourSet(t *testing.T) {
	bookings := []Booking{{ID: "no-hours", Hours: nil}}

	active, claims := ActiveBooking(bookings, 9)
	assert.Nil(t, active)
	assert.Zero(t, claims)
}
