package usecase

import (
	"context"
	"errors"
	"time"

	"court-booking-backend/internal/converter"
	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/delivery/http/middleware"
	"court-booking-backend/internal/domain/entity"
	"court-booking-backend/internal/domain/repository"
	"court-booking-backend/internal/schedule"
	"court-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPromotionCodeTaken = errors.New("promotion code already exists")
	ErrPromotionDateOrder = errors.New("promotion start date must not be after end date")
	ErrPromotionNotOwned  = errors.New("promotion does not belong to you")
)

type PromotionUsecase interface {
	CreatePromotion(ctx context.Context, req *dto.CreatePromotionRequest) (*dto.PromotionResponse, error)
	GetPromotionsByLocation(ctx context.Context, locationID uuid.UUID) (*dto.PromotionListResponse, error)
	UpdatePromotion(ctx context.Context, promotionID uuid.UUID, req *dto.UpdatePromotionRequest) (*dto.PromotionResponse, error)
	DeletePromotion(ctx context.Context, promotionID uuid.UUID) error
}

type promotionUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	promotionRepo repository.PromotionRepository
	locationRepo  repository.LocationRepository
	auditService  service.AuditService
}

func NewPromotionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	promotionRepo repository.PromotionRepository,
	locationRepo repository.LocationRepository,
	auditService service.AuditService,
) PromotionUsecase {
	return &promotionUsecase{
		db:            db,
		log:           log,
		promotionRepo: promotionRepo,
		locationRepo:  locationRepo,
		auditService:  auditService,
	}
}

func (u *promotionUsecase) CreatePromotion(ctx context.Context, req *dto.CreatePromotionRequest) (*dto.PromotionResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if err := u.checkLocationOwned(ctx, req.LocationID, ownerID); err != nil {
		return nil, err
	}

	startDate, endDate, err := parsePromotionDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	promotion := &entity.Promotion{
		LocationID:      req.LocationID,
		Code:            req.Code,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		StartDate:       startDate,
		EndDate:         endDate,
	}

	if err := u.promotionRepo.Create(u.db.WithContext(ctx), promotion); err != nil {
		if isDuplicateKeyError(err, "code") {
			return nil, ErrPromotionCodeTaken
		}
		u.log.Warnf("Failed to create promotion: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &ownerID, entity.AuditActionPromotionCreate, "promotion", promotion.ID.String(), req)

	return converter.PromotionToResponse(promotion), nil
}

func (u *promotionUsecase) GetPromotionsByLocation(ctx context.Context, locationID uuid.UUID) (*dto.PromotionListResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	if err := u.checkLocationOwned(ctx, locationID, ownerID); err != nil {
		return nil, err
	}

	promotions, err := u.promotionRepo.FindByLocationID(u.db.WithContext(ctx), locationID)
	if err != nil {
		u.log.Warnf("Failed to find promotions for location %s: %+v", locationID, err)
		return nil, err
	}

	return &dto.PromotionListResponse{
		Promotions: converter.PromotionsToResponses(promotions),
		Total:      len(promotions),
	}, nil
}

func (u *promotionUsecase) UpdatePromotion(ctx context.Context, promotionID uuid.UUID, req *dto.UpdatePromotionRequest) (*dto.PromotionResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	promotion, err := u.findOwnedPromotion(ctx, promotionID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		promotion.Description = req.Description
	}
	if req.DiscountPercent != nil {
		promotion.DiscountPercent = *req.DiscountPercent
	}
	if req.StartDate != "" {
		day, err := schedule.ParseBookingDate(req.StartDate, time.UTC)
		if err != nil {
			return nil, ErrInvalidDate
		}
		promotion.StartDate = day
	}
	if req.EndDate != "" {
		day, err := schedule.ParseBookingDate(req.EndDate, time.UTC)
		if err != nil {
			return nil, ErrInvalidDate
		}
		promotion.EndDate = day
	}
	if promotion.StartDate.After(promotion.EndDate) {
		return nil, ErrPromotionDateOrder
	}
	if req.IsActive != nil {
		promotion.IsActive = req.IsActive
	}

	if err := u.promotionRepo.Update(u.db.WithContext(ctx), promotion); err != nil {
		u.log.Warnf("Failed to update promotion %s: %+v", promotionID, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &ownerID, entity.AuditActionPromotionUpdate, "promotion", promotionID.String(), nil, req)

	return converter.PromotionToResponse(promotion), nil
}

func (u *promotionUsecase) DeletePromotion(ctx context.Context, promotionID uuid.UUID) error {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	promotion, err := u.findOwnedPromotion(ctx, promotionID, ownerID)
	if err != nil {
		return err
	}

	if err := u.promotionRepo.Delete(u.db.WithContext(ctx), promotionID); err != nil {
		u.log.Warnf("Failed to delete promotion %s: %+v", promotionID, err)
		return err
	}

	u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &ownerID, entity.AuditActionPromotionDelete, "promotion", promotionID.String(), promotion.Code)

	return nil
}

func (u *promotionUsecase) checkLocationOwned(ctx context.Context, locationID, ownerID uuid.UUID) error {
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
	return nil
}

func (u *promotionUsecase) findOwnedPromotion(ctx context.Context, promotionID, ownerID uuid.UUID) (*entity.Promotion, error) {
	promotion, err := u.promotionRepo.FindByID(u.db.WithContext(ctx), promotionID)
	if err != nil {
		u.log.Warnf("Failed to find promotion %s: %+v", promotionID, err)
		return nil, err
	}
	if promotion == nil {
		return nil, ErrPromotionNotFound
	}
	if err := u.checkLocationOwned(ctx, promotion.LocationID, ownerID); err != nil {
		if errors.Is(err, ErrLocationNotOwned) {
			return nil, ErrPromotionNotOwned
		}
		return nil, err
	}
	return promotion, nil
}

func parsePromotionDates(start, end string) (time.Time, time.Time, error) {
	startDate, err := schedule.ParseBookingDate(start, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	endDate, err := schedule.ParseBookingDate(end, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, ErrPromotionDateOrder
	}
	return startDate, endDate, nil
}
