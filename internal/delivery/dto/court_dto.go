package dto

import (
	"time"

	"court-booking-backend/internal/schedule"

	"github.com/google/uuid"
)

// Request DTOs

type CreateCourtRequest struct {
	LocationID   uuid.UUID `json:"location_id" validate:"required"`
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	PricePerHour int64     `json:"price_per_hour" validate:"required,gte=0"`
}

type UpdateCourtRequest struct {
	Name         string `json:"name" validate:"omitempty,min=1,max=100"`
	PricePerHour *int64 `json:"price_per_hour" validate:"omitempty,gte=0"`
	IsActive     *bool  `json:"is_active"`
}

// Response DTOs

type CourtResponse struct {
	ID           uuid.UUID `json:"id"`
	LocationID   uuid.UUID `json:"location_id"`
	Name         string    `json:"name"`
	PricePerHour string    `json:"price_per_hour"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
	Total  int             `json:"total"`
}

// CourtSlotsResponse is the slot grid for one court on one day, with the
// booking occupying the current hour (if any) for the occupancy banner.
type CourtSlotsResponse struct {
	CourtID       uuid.UUID           `json:"court_id"`
	Date          string              `json:"date"`
	Slots         []schedule.TimeSlot `json:"slots"`
	ActiveBooking *BookingResponse    `json:"active_booking,omitempty"`
}
