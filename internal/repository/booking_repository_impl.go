package repository

import (
	"errors"
	"time"

	"court-booking-backend/internal/domain/entity"
	domainRepo "court-booking-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Court").Preload("Location").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByPlayerID(db *gorm.DB, playerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("player_id = ?", playerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindByCourtAndDate returns the bookings occupying a court's slots on one
// day. Cancelled and rejected bookings release their hours, so they are
// excluded here.
func (r *bookingRepository) FindByCourtAndDate(db *gorm.DB, courtID uuid.UUID, date time.Time) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("court_id = ? AND booking_date = ? AND status NOT IN ?",
		courtID, date.Format("2006-01-02"),
		[]entity.BookingStatus{entity.BookingStatusCancelled, entity.BookingStatusRejected}).
		Order("created_at ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByFilter(db *gorm.DB, filter entity.BookingFilter) ([]entity.Booking, error) {
	query := db.Model(&entity.Booking{})

	if filter.LocationID != uuid.Nil {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.CourtID != uuid.Nil {
		query = query.Where("court_id = ?", filter.CourtID)
	}
	if filter.Date != "" {
		query = query.Where("booking_date = ?", filter.Date)
	}

	var bookings []entity.Booking
	err := query.Order("booking_date DESC, created_at DESC").Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatusIfPending atomically transitions a booking out of pending.
// Returns affected rows: 1 = success, 0 = not pending anymore (prevents
// double-confirm / confirm-after-cancel races).
func (r *bookingRepository) UpdateStatusIfPending(db *gorm.DB, id uuid.UUID, status entity.BookingStatus) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, entity.BookingStatusPending).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// CancelBooking atomically cancels a booking ONLY if it's not already in a
// terminal state. Returns affected rows: 1 = success, 0 = already terminal.
func (r *bookingRepository) CancelBooking(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status NOT IN ?", id, []entity.BookingStatus{
			entity.BookingStatusCompleted,
			entity.BookingStatusCancelled,
			entity.BookingStatusRejected,
		}).
		Update("status", entity.BookingStatusCancelled)
	return result.RowsAffected, result.Error
}

// RevenueByDay aggregates confirmed and completed booking totals per day
// across all locations belonging to the owner.
func (r *bookingRepository) RevenueByDay(db *gorm.DB, ownerID uuid.UUID, from, to time.Time) ([]domainRepo.RevenueRow, error) {
	var rows []domainRepo.RevenueRow
	err := db.Model(&entity.Booking{}).
		Select("bookings.booking_date as day, COUNT(bookings.id) as booking_count, COALESCE(SUM(bookings.total_price), 0) as total").
		Joins("JOIN locations ON locations.id = bookings.location_id").
		Where("locations.owner_id = ?", ownerID).
		Where("bookings.booking_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Where("bookings.status IN ?", []entity.BookingStatus{entity.BookingStatusConfirmed, entity.BookingStatusCompleted}).
		Group("bookings.booking_date").
		Order("bookings.booking_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
