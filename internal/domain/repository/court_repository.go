package repository

import (
	"court-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourtRepository interface {
	Create(db *gorm.DB, court *entity.Court) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Court, error)
	FindByLocationID(db *gorm.DB, locationID uuid.UUID) ([]entity.Court, error)
	Update(db *gorm.DB, court *entity.Court) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
