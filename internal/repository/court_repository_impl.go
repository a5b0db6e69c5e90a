package repository

import (
	"errors"

	"court-booking-backend/internal/domain/entity"
	domainRepo "court-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type courtRepository struct{}

func NewCourtRepository() domainRepo.CourtRepository {
	return &courtRepository{}
}

func (r *courtRepository) Create(db *gorm.DB, court *entity.Court) error {
	return db.Create(court).Error
}

func (r *courtRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Court, error) {
	var court entity.Court
	err := db.Preload("Location").Where("id = ?", id).First(&court).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &court, nil
}

func (r *courtRepository) FindByLocationID(db *gorm.DB, locationID uuid.UUID) ([]entity.Court, error) {
	var courts []entity.Court
	err := db.Where("location_id = ?", locationID).
		Order("name ASC").
		Find(&courts).Error
	if err != nil {
		return nil, err
	}
	return courts, nil
}

func (r *courtRepository) Update(db *gorm.DB, court *entity.Court) error {
	return db.Save(court).Error
}

func (r *courtRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&entity.Court{}, "id = ?", id).Error
}
