package entity

import (
	"time"

	"github.com/google/uuid"
)

// Promotion represents a per-location discount code
type Promotion struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	LocationID      uuid.UUID `gorm:"type:uuid;not null;index" json:"location_id"`
	Code            string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Description     string    `gorm:"type:text" json:"description,omitempty"`
	DiscountPercent int       `gorm:"not null" json:"discount_percent"`
	StartDate       time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate         time.Time `gorm:"type:date;not null" json:"end_date"`
	IsActive        *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (Promotion) TableName() string {
	return "promotions"
}

// IsValidOn reports whether the promotion applies to the given date. The
// stored bounds and the candidate date may carry different locations, so each
// value is reduced to its own wall-clock calendar day before comparing.
func (p *Promotion) IsValidOn(date time.Time) bool {
	if p.IsActive != nil && !*p.IsActive {
		return false
	}
	day := calendarDay(date)
	return !day.Before(calendarDay(p.StartDate)) && !day.After(calendarDay(p.EndDate))
}

func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
