package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location represents a badminton venue owned by a court owner
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	District  string    `gorm:"type:varchar(100);index" json:"district"`
	OpenHour  int       `gorm:"not null;default:6" json:"open_hour"`
	CloseHour int       `gorm:"not null;default:22" json:"close_hour"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner  User    `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Courts []Court `gorm:"foreignKey:LocationID" json:"courts,omitempty"`
}

func (Location) TableName() string {
	return "locations"
}
