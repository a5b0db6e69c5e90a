package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"court-booking-backend/config"
	"court-booking-backend/internal/converter"
	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/delivery/http/middleware"
	"court-booking-backend/internal/domain/entity"
	"court-booking-backend/internal/domain/repository"
	"court-booking-backend/internal/schedule"
	"court-booking-backend/internal/service"
	"court-booking-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotOwned   = errors.New("booking does not belong to you")
	ErrBookingTerminal   = errors.New("booking is already in a terminal state")
	ErrSlotUnavailable   = errors.New("one or more requested slots are unavailable")
	ErrHourOutsideWindow = errors.New("requested hour is outside the operating window")
	ErrBookingInPast     = errors.New("booking date is in the past")
	ErrPromotionNotFound = errors.New("promotion code not found")
	ErrPromotionNotValid = errors.New("promotion is not valid for the booking date")
	ErrCourtInactive     = errors.New("court is not open for booking")
)

type PlayerBookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context, now time.Time) (*dto.MyBookingsResponse, *response.Meta, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
}

type playerBookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	bookingRepo     repository.BookingRepository
	courtRepo       repository.CourtRepository
	promotionRepo   repository.PromotionRepository
	userRepo        repository.UserRepository
	slotHoldService *service.SlotHoldService
	auditService    service.AuditService
	bookingCfg      config.BookingConfig
}

func NewPlayerBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	courtRepo repository.CourtRepository,
	promotionRepo repository.PromotionRepository,
	userRepo repository.UserRepository,
	slotHoldService *service.SlotHoldService,
	auditService service.AuditService,
	bookingCfg config.BookingConfig,
) PlayerBookingUsecase {
	return &playerBookingUsecase{
		db:              db,
		log:             log,
		bookingRepo:     bookingRepo,
		courtRepo:       courtRepo,
		promotionRepo:   promotionRepo,
		userRepo:        userRepo,
		slotHoldService: slotHoldService,
		auditService:    auditService,
		bookingCfg:      bookingCfg,
	}
}

// CreateBooking claims the requested hours in Redis first, then inserts the
// booking row. A failed insert compensates by releasing the held keys, so a
// Redis hold never outlives a booking that does not exist.
func (u *playerBookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	playerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}
	player, err := u.userRepo.FindByID(u.db.WithContext(ctx), playerID)
	if err != nil {
		u.log.Warnf("Failed to find player %s: %+v", playerID, err)
		return nil, err
	}
	if player == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()

	bookingDate, err := schedule.ParseBookingDate(req.BookingDate, now.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}
	if bookingDate.Before(schedule.Midnight(now)) {
		return nil, ErrBookingInPast
	}

	hours := entity.HourSet(req.StartHours)
	for _, hour := range req.StartHours {
		if hour < u.bookingCfg.DisplayStartHour || hour >= u.bookingCfg.DisplayEndHour {
			return nil, ErrHourOutsideWindow
		}
	}

	court, err := u.courtRepo.FindByID(u.db.WithContext(ctx), req.CourtID)
	if err != nil {
		u.log.Warnf("Failed to find court %s: %+v", req.CourtID, err)
		return nil, err
	}
	if court == nil {
		return nil, ErrCourtNotFound
	}
	if court.IsActive != nil && !*court.IsActive {
		return nil, ErrCourtInactive
	}

	totalPrice := court.PricePerHour.Mul(decimal.NewFromInt(int64(len(hours))))

	if req.PromotionCode != "" {
		promotion, err := u.promotionRepo.FindByCode(u.db.WithContext(ctx), req.PromotionCode)
		if err != nil {
			u.log.Warnf("Failed to find promotion %s: %+v", req.PromotionCode, err)
			return nil, err
		}
		if promotion == nil {
			return nil, ErrPromotionNotFound
		}
		if promotion.LocationID != court.LocationID || !promotion.IsValidOn(bookingDate) {
			return nil, ErrPromotionNotValid
		}
		discount := totalPrice.Mul(decimal.NewFromInt(int64(promotion.DiscountPercent))).Div(decimal.NewFromInt(100))
		totalPrice = totalPrice.Sub(discount).Truncate(0)
	}

	if err := u.slotHoldService.HoldSlots(ctx, req.CourtID, bookingDate, hours, playerID); err != nil {
		if errors.Is(err, service.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	booking := &entity.Booking{
		BookingCode:     generateBookingCode(bookingDate),
		PlayerID:        playerID,
		CourtID:         court.ID,
		LocationID:      court.LocationID,
		BookingDate:     bookingDate,
		StartHours:      hours,
		Status:          entity.BookingStatusPending,
		TotalPrice:      totalPrice,
		CourtName:       court.Name,
		LocationName:    court.Location.Name,
		LocationAddress: court.Location.Address,
		PlayerName:      player.FullName,
		PlayerPhone:     player.PhoneNumber,
	}

	if err := u.bookingRepo.Create(u.db.WithContext(ctx), booking); err != nil {
		u.log.Warnf("Failed to create booking, releasing held slots: %+v", err)
		if relErr := u.slotHoldService.ReleaseSlots(ctx, req.CourtID, bookingDate, hours); relErr != nil {
			u.log.Errorf("Failed to release slots after insert failure: %+v", relErr)
		}
		if isDuplicateKeyError(err, "") {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	if err := u.slotHoldService.ExtendHold(ctx, req.CourtID, bookingDate, hours, booking.ID); err != nil {
		// The booking row exists; the keys just expire earlier than ideal.
		u.log.Warnf("Failed to extend slot hold for booking %s: %+v", booking.ID, err)
	}

	u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &playerID, entity.AuditActionBookingCreate, "booking", booking.ID.String(), req)

	return converter.BookingToResponse(booking), nil
}

// GetMyBookings splits the player's bookings into upcoming and history
// buckets relative to now. Rows whose stored date cannot be projected back to
// a calendar day are excluded and surfaced as a meta count, never shown.
func (u *playerBookingUsecase) GetMyBookings(ctx context.Context, now time.Time) (*dto.MyBookingsResponse, *response.Meta, error) {
	playerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, nil, errors.New("user not found in context")
	}

	bookings, err := u.bookingRepo.FindByPlayerID(u.db.WithContext(ctx), playerID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for player %s: %+v", playerID, err)
		return nil, nil, err
	}

	byID := make(map[string]*entity.Booking, len(bookings))
	for i := range bookings {
		byID[bookings[i].ID.String()] = &bookings[i]
	}

	classification := schedule.Classify(converter.BookingsToProjections(bookings), now)

	for _, m := range classification.Malformed {
		u.log.Warnf("Excluding booking %s from listing: %s", m.Booking.ID, m.Reason)
	}

	result := &dto.MyBookingsResponse{
		Upcoming: converter.ClassifiedToResponses(classification.Upcoming, byID),
		History:  converter.ClassifiedToResponses(classification.History, byID),
	}
	meta := &response.Meta{
		PageSize:        u.bookingCfg.PageSize,
		UpcomingTotal:   len(classification.Upcoming),
		HistoryTotal:    len(classification.History),
		ExcludedRecords: len(classification.Malformed),
	}

	return result, meta, nil
}

// CancelBooking cancels the player's own booking and frees its slot keys so
// the hours become bookable again immediately.
func (u *playerBookingUsecase) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	playerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return err
	}
	if booking == nil {
		return ErrBookingNotFound
	}
	if booking.PlayerID != playerID {
		return ErrBookingNotOwned
	}

	rows, err := u.bookingRepo.CancelBooking(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to cancel booking %s: %+v", bookingID, err)
		return err
	}
	if rows == 0 {
		return ErrBookingTerminal
	}

	if err := u.slotHoldService.ReleaseSlots(ctx, booking.CourtID, booking.BookingDate, booking.StartHours); err != nil {
		u.log.Warnf("Failed to release slots for cancelled booking %s: %+v", bookingID, err)
	}

	u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), &playerID, entity.AuditActionBookingCancel, "booking", bookingID.String(),
		string(booking.Status), string(entity.BookingStatusCancelled))

	return nil
}

// generateBookingCode builds a human-readable code like BK-20260115-A3F2B1.
func generateBookingCode(date time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a
		// time-derived suffix just in case.
		return fmt.Sprintf("BK-%s-%06d", date.Format("20060102"), time.Now().UnixNano()%1000000)
	}
	return fmt.Sprintf("BK-%s-%s", date.Format("20060102"), strings.ToUpper(hex.EncodeToString(buf)))
}
