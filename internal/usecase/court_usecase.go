package usecase

import (
	"context"
	"errors"
	"time"

	"court-booking-backend/config"
	"court-booking-backend/internal/converter"
	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/delivery/http/middleware"
	"court-booking-backend/internal/domain/entity"
	"court-booking-backend/internal/domain/repository"
	"court-booking-backend/internal/schedule"
	"court-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCourtNotFound = errors.New("court not found")
	ErrCourtNotOwned = errors.New("court does not belong to you")
	ErrInvalidDate   = errors.New("invalid date format, use YYYY-MM-DD")
)

type CourtUsecase interface {
	CreateCourt(ctx context.Context, req *dto.CreateCourtRequest) (*dto.CourtResponse, error)
	GetCourtsByLocation(ctx context.Context, locationID uuid.UUID) (*dto.CourtListResponse, error)
	UpdateCourt(ctx context.Context, courtID uuid.UUID, req *dto.UpdateCourtRequest) (*dto.CourtResponse, error)
	DeleteCourt(ctx context.Context, courtID uuid.UUID) error
	GetCourtSlots(ctx context.Context, courtID uuid.UUID, date string, now time.Time) (*dto.CourtSlotsResponse, error)
}

type courtUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	courtRepo    repository.CourtRepository
	locationRepo repository.LocationRepository
	bookingRepo  repository.BookingRepository
	auditService service.AuditService
	bookingCfg   config.BookingConfig
}

func NewCourtUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	courtRepo repository.CourtRepository,
	locationRepo repository.LocationRepository,
	bookingRepo repository.BookingRepository,
	auditService service.AuditService,
	bookingCfg config.BookingConfig,
) CourtUsecase {
	return &courtUsecase{
		db:           db,
		log:          log,
		courtRepo:    courtRepo,
		locationRepo: locationRepo,
		bookingRepo:  bookingRepo,
		auditService: auditService,
		bookingCfg:   bookingCfg,
	}
}

func (u *courtUsecase) CreateCourt(ctx context.Context, req *dto.CreateCourtRequest) (*dto.CourtResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	location, err := u.locationRepo.FindByID(u.db.WithContext(ctx), req.LocationID)
	if err != nil {
		u.log.Warnf("Failed to find location %s: %+v", req.LocationID, err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	if location.OwnerID != ownerID {
		return nil, ErrLocationNotOwned
	}

	court := &entity.Court{
		LocationID:   req.LocationID,
		Name:         req.Name,
		PricePerHour: decimal.NewFromInt(req.PricePerHour),
	}

	if err := u.courtRepo.Create(u.db.WithContext(ctx), court); err != nil {
		u.log.Warnf("Failed to create court: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &ownerID, entity.AuditActionCourtCreate, "court", court.ID.String(), req)

	return converter.CourtToResponse(court), nil
}

func (u *courtUsecase) GetCourtsByLocation(ctx context.Context, locationID uuid.UUID) (*dto.CourtListResponse, error) {
	location, err := u.locationRepo.FindByID(u.db.WithContext(ctx), locationID)
	if err != nil {
		u.log.Warnf("Failed to find location %s: %+v", locationID, err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	courts, err := u.courtRepo.FindByLocationID(u.db.WithContext(ctx), locationID)
	if err != nil {
		u.log.Warnf("Failed to find courts for location %s: %+v", locationID, err)
		return nil, err
	}

	return &dto.CourtListResponse{
		Courts: converter.CourtsToResponses(courts),
		Total:  len(courts),
	}, nil
}

func (u *courtUsecase) UpdateCourt(ctx context.Context, courtID uuid.UUID, req *dto.UpdateCourtRequest) (*dto.CourtResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	court, err := u.findOwnedCourt(ctx, courtID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		court.Name = req.Name
	}
	if req.PricePerHour != nil {
		court.PricePerHour = decimal.NewFromInt(*req.PricePerHour)
	}
	if req.IsActive != nil {
		court.IsActive = req.IsActive
	}

	if err := u.courtRepo.Update(u.db.WithContext(ctx), court); err != nil {
		u.log.Warnf("Failed to update court %s: %+v", courtID, err)
		return nil, err
	}

	u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &ownerID, entity.AuditActionCourtUpdate, "court", court.ID.String(), nil, req)

	return converter.CourtToResponse(court), nil
}

func (u *courtUsecase) DeleteCourt(ctx context.Context, courtID uuid.UUID) error {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	court, err := u.findOwnedCourt(ctx, courtID, ownerID)
	if err != nil {
		return err
	}

	if err := u.courtRepo.Delete(u.db.WithContext(ctx), courtID); err != nil {
		u.log.Warnf("Failed to delete court %s: %+v", courtID, err)
		return err
	}

	u.auditService.LogDelete(ctx, u.db.WithContext(ctx), &ownerID, entity.AuditActionCourtDelete, "court", courtID.String(), court.Name)

	return nil
}

// GetCourtSlots returns the display grid for one court on one day plus the
// booking occupying the current hour, for the occupancy banner.
func (u *courtUsecase) GetCourtSlots(ctx context.Context, courtID uuid.UUID, date string, now time.Time) (*dto.CourtSlotsResponse, error) {
	court, err := u.courtRepo.FindByID(u.db.WithContext(ctx), courtID)
	if err != nil {
		u.log.Warnf("Failed to find court %s: %+v", courtID, err)
		return nil, err
	}
	if court == nil {
		return nil, ErrCourtNotFound
	}

	day, err := schedule.ParseBookingDate(date, now.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}

	bookings, err := u.bookingRepo.FindByCourtAndDate(u.db.WithContext(ctx), courtID, day)
	if err != nil {
		u.log.Warnf("Failed to find bookings for court %s on %s: %+v", courtID, date, err)
		return nil, err
	}

	projections := converter.BookingsToProjections(bookings)

	window := schedule.Window{
		StartHour: u.bookingCfg.DisplayStartHour,
		EndHour:   u.bookingCfg.DisplayEndHour,
	}
	grid := schedule.BuildGrid(projections, window)

	resp := &dto.CourtSlotsResponse{
		CourtID: courtID,
		Date:    day.Format("2006-01-02"),
		Slots:   grid,
	}

	// Occupancy banner only applies when viewing today's grid.
	if schedule.Midnight(now).Equal(day) {
		active, claims := schedule.ActiveBooking(projections, now.Hour())
		if claims > 1 {
			u.log.Warnf("Data integrity: %d bookings claim hour %d on court %s for %s", claims, now.Hour(), courtID, date)
		}
		if active != nil {
			for i := range bookings {
				if bookings[i].ID.String() == active.ID {
					resp.ActiveBooking = converter.BookingToResponse(&bookings[i])
					break
				}
			}
		}
	}

	return resp, nil
}

func (u *courtUsecase) findOwnedCourt(ctx context.Context, courtID, ownerID uuid.UUID) (*entity.Court, error) {
	court, err := u.courtRepo.FindByID(u.db.WithContext(ctx), courtID)
	if err != nil {
		u.log.Warnf("Failed to find court %s: %+v", courtID, err)
		return nil, err
	}
	if court == nil {
		return nil, ErrCourtNotFound
	}
	if court.Location.OwnerID != ownerID {
		return nil, ErrCourtNotOwned
	}
	return court, nil
}
