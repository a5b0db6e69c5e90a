package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want BookingStatus
	}{
		{"pending", BookingStatusPending},
		{"CONFIRMED", BookingStatusConfirmed},
		{"cancelled", BookingStatusCancelled},
		{"canceled", BookingStatusCancelled},
		{"CANCELED", BookingStatusCancelled},
		{" Cancelled ", BookingStatusCancelled},
		{"rejected", BookingStatusRejected},
		// Unknown values pass through untouched for forward compatibility.
		{"refunded", BookingStatus("refunded")},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeStatus(tt.raw), "raw %q", tt.raw)
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	assert.True(t, BookingStatusCompleted.IsTerminal())
	assert.True(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusRejected.IsTerminal())

	assert.False(t, BookingStatusPending.IsTerminal())
	assert.False(t, BookingStatusConfirmed.IsTerminal())
	assert.False(t, BookingStatus("refunded").IsTerminal())
}

func TestHourSetContains(t *testing.T) {
	hours := HourSet{6, 9, 10}

	assert.True(t, hours.Contains(6))
	assert.True(t, hours.Contains(10))
	assert.False(t, hours.Contains(7))
	assert.False(t, HourSet(nil).Contains(6))
}

func TestHourSetScanValue(t *testing.T) {
	hours := HourSet{6, 7, 8}

	value, err := hours.Value()
	require.NoError(t, err)
	assert.JSONEq(t, "[6,7,8]", string(value.([]byte)))

	var scanned HourSet
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, hours, scanned)

	require.NoError(t, scanned.Scan("[19,20]"))
	assert.Equal(t, HourSet{19, 20}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)

	assert.Error(t, scanned.Scan(42))
	assert.Error(t, scanned.Scan("not json"))
}
