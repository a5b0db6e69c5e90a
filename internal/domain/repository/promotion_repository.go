package repository

import (
	"court-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PromotionRepository interface {
	Create(db *gorm.DB, promotion *entity.Promotion) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Promotion, error)
	FindByCode(db *gorm.DB, code string) (*entity.Promotion, error)
	FindByLocationID(db *gorm.DB, locationID uuid.UUID) ([]entity.Promotion, error)
	Update(db *gorm.DB, promotion *entity.Promotion) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
