package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Court represents a single reservable badminton court inside a location
type Court struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LocationID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"location_id"`
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	PricePerHour decimal.Decimal `gorm:"type:numeric(12,0);not null" json:"price_per_hour"`
	IsActive     *bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Location Location  `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	Bookings []Booking `gorm:"foreignKey:CourtID" json:"bookings,omitempty"`
}

func (Court) TableName() string {
	return "courts"
}
