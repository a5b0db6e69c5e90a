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

var ErrBookingNotPending = errors.New("booking is no longer pending")

type OwnerBookingUsecase interface {
	GetLocationBookings(ctx context.Context, filter entity.BookingFilter) (*dto.BookingListResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
}

type ownerBookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	bookingRepo     repository.BookingRepository
	locationRepo    repository.LocationRepository
	slotHoldService *service.SlotHoldService
	auditService    service.AuditService
}

func NewOwnerBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	locationRepo repository.LocationRepository,
	slotHoldService *service.SlotHoldService,
	auditService service.AuditService,
) OwnerBookingUsecase {
	return &ownerBookingUsecase{
		db:              db,
		log:             log,
		bookingRepo:     bookingRepo,
		locationRepo:    locationRepo,
		slotHoldService: slotHoldService,
		auditService:    auditService,
	}
}

func (u *ownerBookingUsecase) GetLocationBookings(ctx context.Context, filter entity.BookingFilter) (*dto.BookingListResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	location, err := u.locationRepo.FindByID(u.db.WithContext(ctx), filter.LocationID)
	if err != nil {
		u.log.Warnf("Failed to find location %s: %+v", filter.LocationID, err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	if location.OwnerID != ownerID {
		return nil, ErrLocationNotOwned
	}

	bookings, err := u.bookingRepo.FindByFilter(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to find bookings for location %s: %+v", filter.LocationID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// UpdateBookingStatus confirms or rejects a pending booking on a court the
// owner controls. Only pending bookings transition; a rejection frees the
// Redis slot keys so the hours are bookable again.
func (u *ownerBookingUsecase) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	location, err := u.locationRepo.FindByID(u.db.WithContext(ctx), booking.LocationID)
	if err != nil {
		u.log.Warnf("Failed to find location %s: %+v", booking.LocationID, err)
		return nil, err
	}
	if location == nil || location.OwnerID != ownerID {
		return nil, ErrLocationNotOwned
	}

	newStatus := entity.NormalizeStatus(req.Status)

	rows, err := u.bookingRepo.UpdateStatusIfPending(u.db.WithContext(ctx), bookingID, newStatus)
	if err != nil {
		u.log.Warnf("Failed to update status of booking %s: %+v", bookingID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrBookingNotPending
	}

	if newStatus == entity.BookingStatusRejected {
		if err := u.slotHoldService.ReleaseSlots(ctx, booking.CourtID, booking.BookingDate, booking.StartHours); err != nil {
			u.log.Warnf("Failed to release slots for rejected booking %s: %+v", bookingID, err)
		}
	}

	action := entity.AuditActionBookingConfirm
	if newStatus == entity.BookingStatusRejected {
		action = entity.AuditActionBookingReject
	}
	u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &ownerID, action, "booking", bookingID.String(),
		string(booking.Status), string(newStatus))

	booking.Status = newStatus
	return converter.BookingToResponse(booking), nil
}
