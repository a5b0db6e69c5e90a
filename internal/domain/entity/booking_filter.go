package entity

import "github.com/google/uuid"

// BookingFilter is a domain-level filter for querying bookings.
// Used by repository layer to avoid coupling with delivery DTOs.
type BookingFilter struct {
	LocationID uuid.UUID
	CourtID    uuid.UUID
	Date       string // Format: YYYY-MM-DD, empty = all dates
}
