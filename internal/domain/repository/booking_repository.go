package repository

import (
	"time"

	"court-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RevenueRow is one day of aggregated revenue for an owner's locations.
type RevenueRow struct {
	Day          time.Time
	BookingCount int64
	Total        string // numeric aggregate scanned as string, parsed by the usecase
}

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByPlayerID(db *gorm.DB, playerID uuid.UUID) ([]entity.Booking, error)
	FindByCourtAndDate(db *gorm.DB, courtID uuid.UUID, date time.Time) ([]entity.Booking, error)
	FindByFilter(db *gorm.DB, filter entity.BookingFilter) ([]entity.Booking, error)
	UpdateStatusIfPending(db *gorm.DB, id uuid.UUID, status entity.BookingStatus) (int64, error)
	CancelBooking(db *gorm.DB, id uuid.UUID) (int64, error)
	RevenueByDay(db *gorm.DB, ownerID uuid.UUID, from, to time.Time) ([]RevenueRow, error)
}
