package repository

import (
	"errors"

	"court-booking-backend/internal/domain/entity"
	domainRepo "court-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type promotionRepository struct{}

func NewPromotionRepository() domainRepo.PromotionRepository {
	return &promotionRepository{}
}

func (r *promotionRepository) Create(db *gorm.DB, promotion *entity.Promotion) error {
	return db.Create(promotion).Error
}

func (r *promotionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Promotion, error) {
	var promotion entity.Promotion
	err := db.Where("id = ?", id).First(&promotion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) FindByCode(db *gorm.DB, code string) (*entity.Promotion, error) {
	var promotion entity.Promotion
	err := db.Where("code = ?", code).First(&promotion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promotion, nil
}

func (r *promotionRepository) FindByLocationID(db *gorm.DB, locationID uuid.UUID) ([]entity.Promotion, error) {
	var promotions []entity.Promotion
	err := db.Where("location_id = ?", locationID).
		Order("created_at DESC").
		Find(&promotions).Error
	if err != nil {
		return nil, err
	}
	return promotions, nil
}

func (r *promotionRepository) Update(db *gorm.DB, promotion *entity.Promotion) error {
	return db.Save(promotion).Error
}

func (r *promotionRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&entity.Promotion{}, "id = ?", id).Error
}
