package usecase

import (
	"context"
	"errors"
	"time"

	"court-booking-backend/internal/delivery/dto"
	"court-booking-backend/internal/delivery/http/middleware"
	"court-booking-backend/internal/domain/repository"
	"court-booking-backend/internal/schedule"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDateRange = errors.New("from date must not be after to date")

type StatisticsUsecase interface {
	GetRevenueByDay(ctx context.Context, from, to string) (*dto.RevenueResponse, error)
}

type statisticsUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
}

func NewStatisticsUsecase(db *gorm.DB, log *logrus.Logger, bookingRepo repository.BookingRepository) StatisticsUsecase {
	return &statisticsUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
	}
}

// GetRevenueByDay aggregates confirmed and completed bookings across all the
// owner's locations, one row per booking day in [from, to].
func (u *statisticsUsecase) GetRevenueByDay(ctx context.Context, from, to string) (*dto.RevenueResponse, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	now := time.Now()

	fromDay, err := schedule.ParseBookingDate(from, now.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}
	toDay, err := schedule.ParseBookingDate(to, now.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}
	if fromDay.After(toDay) {
		return nil, ErrInvalidDateRange
	}

	rows, err := u.bookingRepo.RevenueByDay(u.db.WithContext(ctx), ownerID, fromDay, toDay)
	if err != nil {
		u.log.Warnf("Failed to aggregate revenue for owner %s: %+v", ownerID, err)
		return nil, err
	}

	days := make([]dto.RevenueDayResponse, 0, len(rows))
	grandTotal := decimal.Zero
	var totalBookings int64

	for _, row := range rows {
		total, err := decimal.NewFromString(row.Total)
		if err != nil {
			u.log.Warnf("Skipping revenue row with unparseable total %q: %+v", row.Total, err)
			continue
		}
		grandTotal = grandTotal.Add(total)
		totalBookings += row.BookingCount

		days = append(days, dto.RevenueDayResponse{
			Date:         row.Day.Format("2006-01-02"),
			DisplayDate:  schedule.FormatDisplayDate(row.Day),
			BookingCount: row.BookingCount,
			Total:        total.Truncate(0).String(),
			DisplayTotal: schedule.FormatVND(total),
		})
	}

	return &dto.RevenueResponse{
		From:              fromDay.Format("2006-01-02"),
		To:                toDay.Format("2006-01-02"),
		Days:              days,
		GrandTotal:        grandTotal.Truncate(0).String(),
		DisplayGrandTotal: schedule.FormatVND(grandTotal),
		TotalBookings:     totalBookings,
	}, nil
}
