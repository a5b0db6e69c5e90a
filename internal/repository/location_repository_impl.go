package repository

import (
	"errors"

	"court-booking-backend/internal/domain/entity"
	domainRepo "court-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type locationRepository struct{}

func NewLocationRepository() domainRepo.LocationRepository {
	return &locationRepository{}
}

func (r *locationRepository) Create(db *gorm.DB, location *entity.Location) error {
	return db.Create(location).Error
}

func (r *locationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Location, error) {
	var location entity.Location
	err := db.Preload("Courts").Where("id = ?", id).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Location, error) {
	var locations []entity.Location
	err := db.Preload("Courts").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) FindAllActive(db *gorm.DB) ([]entity.Location, error) {
	var locations []entity.Location
	err := db.Where("is_active = ?", true).
		Order("name ASC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) Update(db *gorm.DB, location *entity.Location) error {
	return db.Save(location).Error
}

func (r *locationRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Delete(&entity.Location{}, "id = ?", id).Error
}
