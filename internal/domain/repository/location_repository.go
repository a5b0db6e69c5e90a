package repository

import (
	"court-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(db *gorm.DB, location *entity.Location) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Location, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Location, error)
	FindAllActive(db *gorm.DB) ([]entity.Location, error)
	Update(db *gorm.DB, location *entity.Location) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
