package converter

import (
	"testing"
	"time"

	"court-booking-backend/internal/domain/entity"
	"court-booking-backend/internal/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() entity.Booking {
	return entity.Booking{
		ID:              uuid.New(),
		BookingCode:     "BK-20260105-A3F2B1",
		PlayerID:        uuid.New(),
		CourtID:         uuid.New(),
		LocationID:      uuid.New(),
		BookingDate:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		StartHours:      entity.HourSet{18, 19, 20},
		Status:          entity.BookingStatusConfirmed,
		TotalPrice:      decimal.NewFromInt(450000),
		CourtName:       "Court 2",
		LocationName:    "ABC Badminton",
		LocationAddress: "12 Nguyen Trai",
		PlayerName:      "Minh Tran",
		PlayerPhone:     "0901234567",
	}
}

func TestBookingToProjection(t *testing.T) {
	booking := sampleBooking()

	p := BookingToProjection(&booking)

	assert.Equal(t, booking.ID.String(), p.ID)
	assert.Equal(t, booking.CourtID.String(), p.CourtID)
	assert.Equal(t, "2026-01-05", p.Date)
	assert.Equal(t, entity.HourSet{18, 19, 20}, p.Hours)
	assert.Equal(t, entity.BookingStatusConfirmed, p.Status)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(450000)))
}

func TestBookingToProjectionNormalizesStatus(t *testing.T) {
	booking := sampleBooking()
	booking.Status = entity.BookingStatus("CANCELED")

	p := BookingToProjection(&booking)

	assert.Equal(t, entity.BookingStatusCancelled, p.Status)
}

func TestBookingToResponseDisplayFields(t *testing.T) {
	booking := sampleBooking()

	resp := BookingToResponse(&booking)
	require.NotNil(t, resp)

	assert.Equal(t, "05/01/2026", resp.DisplayDate)
	assert.Equal(t, "18:00 - 21:00", resp.DisplayHours)
	assert.Equal(t, "450.000đ", resp.DisplayPrice)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "Đã xác nhận", resp.StatusBadge.Label)
	assert.Equal(t, "450000", resp.TotalPrice)
}

func TestBookingToResponseNil(t *testing.T) {
	assert.Nil(t, BookingToResponse(nil))
}

func TestClassifiedToResponsesOverridesDisplayFields(t *testing.T) {
	booking := sampleBooking()
	byID := map[string]*entity.Booking{booking.ID.String(): &booking}

	classified := []schedule.ClassifiedBooking{
		{
			Booking:      BookingToProjection(&booking),
			DisplayDate:  "05/01/2026",
			DisplayHours: "18:00 - 21:00",
			DisplayPrice: "450.000đ",
			Badge:        schedule.PresentStatus(entity.BookingStatusConfirmed),
		},
	}

	responses := ClassifiedToResponses(classified, byID)
	require.Len(t, responses, 1)
	assert.Equal(t, booking.ID, responses[0].ID)
	assert.Equal(t, "05/01/2026", responses[0].DisplayDate)

	// Entries with no matching stored row are dropped, not zero-filled.
	orphan := []schedule.ClassifiedBooking{{Booking: schedule.Booking{ID: uuid.New().String()}}}
	assert.Empty(t, ClassifiedToResponses(orphan, byID))
}

func TestBookingsToProjectionsOrderPreserved(t *testing.T) {
	first := sampleBooking()
	second := sampleBooking()
	second.BookingDate = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	projections := BookingsToProjections([]entity.Booking{first, second})
	require.Len(t, projections, 2)
	assert.Equal(t, "2026-01-05", projections[0].Date)
	assert.Equal(t, "2026-02-01", projections[1].Date)
}
