package usecase

import (
	"context"
	"errors"

	"court-booking-backend/internal/converter"
	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/delivery/http/middleware"
	"court-booking-backend/internal/domain/entity"
	"court-booking-backend/internal/domain/repository"
	"court-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrLocationNotOwned = errors.New("location does not belong to you")
	ErrInvalidHourRange = errors.New("open hour must be before close hour")
)

type LocationUsecase interface {
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	GetLocation(ctx context.Context, locationID uuid.UUID) (*dto.LocationResponse, error)
	GetMyLocations(ctx context.Context) (*dto.LocationListResponse, error)
	GetActiveLocations(ctx context.Context) (*dto.LocationListResponse, error)
	UpdateLocation(ctx context.Context, locationID uuid.UUID, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	DeleteLocation(ctx context.Context, locationID uuid.UUID) error
}

type locationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	locationRepo repository.LocationRepository
	auditService service.AuditService
}

func NewLocationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	locationRepo repository.LocationRepository,
	auditService service.AuditService,
) LocationUsecase {
	return &locationUsecase{
		db:           db,
		log:          log,
		locationRepo: locationRepo,
		auditService: auditService,
	}
}

func (u *locationUsecase) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if req.CloseHour <= req.OpenHour {
		return nil, ErrInvalidHourRange
	}

	location := &entity.Location{
		OwnerID:   ownerID,
		Name:      req.Name,
		Address:   req.Address,
		District:  req.District,
		OpenHour:  req.OpenHour,
		CloseHour: req.CloseHour,
	}

	if err := u.locationRepo.Create(u.db.WithContext(ctx), location); err != nil {
		u.log.Warnf("Failed to create location: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &ownerID, entity.AuditActionLocationCreate, "location", location.ID.String(), req)

	return converter.LocationToResponse(location), nil
}

func (u *locationUsecase) GetLocation(ctx context.Context, locationID uuid.UUID) (*dto.LocationResponse, error) {
	location, err := u.locationRepo.FindByID(u.db.WithContext(ctx), locationID)
	if err != nil {
		u.log.Warnf("Failed to find location %s: %+v", locationID, err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	return converter.LocationToResponse(location), nil
}

func (u *locationUsecase) GetMyLocations(ctx context.Context) (*dto.LocationListResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	locations, err := u.locationRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		u.log.Warnf("Failed to find locations for owner %s: %+v", ownerID, err)
		return nil, err
	}

	return &dto.LocationListResponse{
		Locations: converter.LocationsToResponses(locations),
		Total:     len(locations),
	}, nil
}

func (u *locationUsecase) GetActiveLocations(ctx context.Context) (*dto.LocationListResponse, error) {
	locations, err := u.locationRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active locations: %+v", err)
		return nil, err
	}

	return &dto.LocationListResponse{
		Locations: converter.LocationsToResponses(locations),
		Total:     len(locations),
	}, nil
}

func (u *locationUsecase) UpdateLocation(ctx context.Context, locationID uuid.UUID, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	location, err := u.locationRepo.FindByID(u.db.WithContext(ctx), locationID)
	if err != nil {
		u.log.Warnf("Failed to find location %s: %+v", locationID, err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	if location.OwnerID != ownerID {
		return nil, ErrLocationNotOwned
	}

	oldValue := *location

	if req.Name != "" {
		location.Name = req.Name
	}
	if req.Address != "" {
		location.Address = req.Address
	}
	if req.District != "" {
		location.District = req.District
	}
	if req.OpenHour != nil {
		location.OpenHour = *req.OpenHour
	}
	if req.CloseHour != nil {
		location.CloseHour = *req.CloseHour
	}
	if req.IsActive != nil {
		location.IsActive = req.IsActive
	}

	if location.CloseHour <= location.OpenHour {
		return nil, ErrInvalidHourRange
	}

	if err := u.locationRepo.Update(u.db.WithContext(ctx), location); err != nil {
		u.log.Warnf("Failed to update location %s: %+v", locationID, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &ownerID, entity.AuditActionLocationUpdate, "location", location.ID.String(), oldValue.Name, req)

	return converter.LocationToResponse(location), nil
}

func (u *locationUsecase) DeleteLocation(ctx context.Context, locationID uuid.UUID) error {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	location, err := u.locationRepo.FindByID(u.db.WithContext(ctx), locationID)
	if err != nil {
		u.log.Warnf("Failed to find location %s: %+v", locationID, err)
		return err
	}
	if location == nil {
		return ErrLocationNotFound
	}
	if location.OwnerID != ownerID {
		return ErrLocationNotOwned
	}

	if err := u.locationRepo.Delete(u.db.WithContext(ctx), locationID); err != nil {
		u.log.Warnf("Failed to delete location %s: %+v", locationID, err)
		return err
	}

	u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &ownerID, entity.AuditActionLocationDelete, "location", locationID.String(), location.Name)

	return nil
}
