package schedule

import (
	"testing"
	"time"

	"court-booking-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decimalFromInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "05/01/2026", FormatDisplayDate(time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "31/12/2025", FormatDisplayDate(time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local)))
}

func TestFormatHourRange(t *testing.T) {
	tests := []struct {
		name  string
		hours entity.HourSet
		want  string
	}{
		{"contiguous", entity.HourSet{6, 7, 8}, "6:00 - 9:00"},
		{"single hour", entity.HourSet{10}, "10:00 - 11:00"},
		// Documented approximation: non-contiguous sets render as one range.
		{"non-contiguous", entity.HourSet{6, 9}, "6:00 - 10:00"},
		{"unsorted", entity.HourSet{8, 6, 7}, "6:00 - 9:00"},
		{"empty degrades to placeholder", entity.HourSet{}, ""},
		{"nil degrades to placeholder", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHourRange(tt.hours))
		})
	}
}

func TestFormatHourSpans(t *testing.T) {
	tests := []struct {
		name  string
		hours entity.HourSet
		want  string
	}{
		{"contiguous", entity.HourSet{6, 7, 8}, "6:00 - 9:00"},
		{"non-contiguous", entity.HourSet{6, 9}, "6:00 - 7:00, 9:00 - 10:00"},
		{"two runs", entity.HourSet{6, 7, 9, 10}, "6:00 - 8:00, 9:00 - 11:00"},
		{"unsorted with duplicate", entity.HourSet{9, 6, 7, 7}, "6:00 - 8:00, 9:00 - 10:00"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHourSpans(tt.hours))
		})
	}
}

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0đ"},
		{500, "500đ"},
		{1500, "1.500đ"},
		{150000, "150.000đ"},
		{1250000, "1.250.000đ"},
		{-75000, "-75.000đ"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVND(decimal.NewFromInt(tt.amount)), "amount %d", tt.amount)
	}
}

func TestPresentStatus(t *testing.T) {
	assert.Equal(t, StatusBadge{Label: "Chờ xác nhận", Color: ColorWarning}, PresentStatus(entity.BookingStatusPending))
	assert.Equal(t, StatusBadge{Label: "Đã xác nhận", Color: ColorSuccess}, PresentStatus(entity.BookingStatusConfirmed))
	assert.Equal(t, StatusBadge{Label: "Hoàn thành", Color: ColorInfo}, PresentStatus(entity.BookingStatusCompleted))
	assert.Equal(t, StatusBadge{Label: "Đã hủy", Color: ColorDanger}, PresentStatus(entity.BookingStatusCancelled))
	assert.Equal(t, StatusBadge{Label: "Bị từ chối", Color: ColorDanger}, PresentStatus(entity.BookingStatusRejected))

	// Forward compatibility: unknown statuses pass through with neutral color.
	badge := PresentStatus(entity.BookingStatus("refunded"))
	assert.Equal(t, StatusBadge{Label: "refunded", Color: ColorNeutral}, badge)

	// The alternate spelling never reaches presentation unnormalized.
	assert.Equal(t, PresentStatus(entity.BookingStatusCancelled), PresentStatus(entity.NormalizeStatus("canceled")))
}
