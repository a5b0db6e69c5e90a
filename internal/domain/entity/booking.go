package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRejected  BookingStatus = "rejected"
)

// bookingStatusCanceledAlt is the alternate single-L spelling still emitted by
// older clients. It never leaves the ingestion boundary.
const bookingStatusCanceledAlt = "canceled"

// NormalizeStatus maps a raw status string to the canonical vocabulary.
// Both cancellation spellings collapse to BookingStatusCancelled. Unknown
// values pass through unchanged so a new backend status never hard-fails.
func NormalizeStatus(raw string) BookingStatus {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == bookingStatusCanceledAlt {
		return BookingStatusCancelled
	}
	return BookingStatus(s)
}

// IsTerminal reports whether no further state transition is expected.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected:
		return true
	}
	return false
}

// HourSet is the set of reserved hour-of-day slots, stored as a JSONB array.
// A persisted booking always has a non-empty HourSet; an empty set means
// "no time information available" and must degrade gracefully downstream.
type HourSet []int

// Contains reports whether the given hour is reserved.
func (h HourSet) Contains(hour int) bool {
	for _, v := range h {
		if v == hour {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for JSONB storage
func (h HourSet) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal([]int(h))
}

// Scan implements sql.Scanner for JSONB storage
func (h *HourSet) Scan(value interface{}) error {
	if value == nil {
		*h = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal hour set value:", value))
	}

	var result []int
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*h = HourSet(result)
	return nil
}

// Booking represents a court reservation for a single day
type Booking struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingCode string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"booking_code"`
	PlayerID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"player_id"`
	CourtID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"court_id"`
	LocationID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"location_id"`
	BookingDate time.Time       `gorm:"type:date;not null;index" json:"booking_date"`
	StartHours  HourSet         `gorm:"type:jsonb;not null" json:"start_hours"`
	Status      BookingStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(12,0);not null" json:"total_price"`

	// Denormalized for owner-facing views
	CourtName       string `gorm:"type:varchar(100);not null" json:"court_name"`
	LocationName    string `gorm:"type:varchar(255);not null" json:"location_name"`
	LocationAddress string `gorm:"type:text;not null" json:"location_address"`
	PlayerName      string `gorm:"type:varchar(255);not null" json:"player_name"`
	PlayerPhone     string `gorm:"type:varchar(20)" json:"player_phone"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Player   User     `gorm:"foreignKey:PlayerID" json:"player,omitempty"`
	Court    Court    `gorm:"foreignKey:CourtID" json:"court,omitempty"`
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsPending checks if booking is in pending status
func (b *Booking) IsPending() bool {
	return b.Status == BookingStatusPending
}

// IsCancelled checks if booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}
