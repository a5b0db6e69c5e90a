// Package schedule holds the pure slot-availability and booking-classification
// core. Everything in this package is a synchronous function of its inputs:
// no I/O, no ambient clock, no shared state. Callers supply the reference
// time explicitly so behavior is reproducible under test.
package schedule

import (
	"court-booking-backend/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Booking is the read-only projection the scheduling core operates on.
// It is rebuilt from storage on every evaluation and never persisted.
type Booking struct {
	ID              string
	CourtID         string
	CourtName       string
	LocationName    string
	LocationAddress string
	PlayerName      string
	PlayerPhone     string
	Date            string // Format: YYYY-MM-DD
	Hours           entity.HourSet
	Status          entity.BookingStatus
	Price           decimal.Decimal
}
