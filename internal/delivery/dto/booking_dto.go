package dto

import (
	"time"

	"court-booking-backend/internal/schedule"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	CourtID       uuid.UUID `json:"court_id" validate:"required"`
	BookingDate   string    `json:"booking_date" validate:"required"` // Format: YYYY-MM-DD
	StartHours    []int     `json:"start_hours" validate:"required,min=1,unique,dive,gte=0,lte=23"`
	PromotionCode string    `json:"promotion_code" validate:"omitempty,max=50"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed rejected"`
}

// Response DTOs

type BookingResponse struct {
	ID              uuid.UUID            `json:"id"`
	BookingCode     string               `json:"booking_code"`
	CourtID         uuid.UUID            `json:"court_id"`
	CourtName       string               `json:"court_name"`
	LocationID      uuid.UUID            `json:"location_id"`
	LocationName    string               `json:"location_name"`
	LocationAddress string               `json:"location_address"`
	PlayerName      string               `json:"player_name"`
	PlayerPhone     string               `json:"player_phone,omitempty"`
	BookingDate     string               `json:"booking_date"` // Format: YYYY-MM-DD
	StartHours      []int                `json:"start_hours"`
	Status          string               `json:"status"`
	StatusBadge     schedule.StatusBadge `json:"status_badge"`
	TotalPrice      string               `json:"total_price"`
	DisplayDate     string               `json:"display_date"`  // Format: DD/MM/YYYY
	DisplayHours    string               `json:"display_hours"` // e.g. "6:00 - 9:00"
	DisplayPrice    string               `json:"display_price"` // e.g. "150.000đ"
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// MyBookingsResponse carries the classified buckets: the full, sorted lists
// are the source of truth. Bucket totals, the page size, and the excluded
// count travel in the response meta envelope.
type MyBookingsResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	History  []BookingResponse `json:"history"`
}
