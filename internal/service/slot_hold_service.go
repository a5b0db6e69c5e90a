package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"court-booking-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrSlotTaken is returned when at least one requested hour is already held
// or booked for the court and date.
var ErrSlotTaken = errors.New("one or more requested slots are already taken")

// holdSlotsScript atomically claims a set of hour keys. Redis Go client
// automatically uses EVALSHA (send SHA hash only) after the first call,
// instead of EVAL (send full script text every time).
//
// Logic:
// 1. If ANY key already exists → return its 1-based index (conflict, claim nothing)
// 2. Otherwise SET every key to the holder id with the given TTL and return 0
var holdSlotsScript = redis.NewScript(`
	for i = 1, #KEYS do
		if redis.call('EXISTS', KEYS[i]) == 1 then
			return i
		end
	end
	for i = 1, #KEYS do
		redis.call('SET', KEYS[i], ARGV[1], 'EX', tonumber(ARGV[2]))
	end
	return 0
`)

const (
	// Redis key prefix for court slot holds: court:slot:<courtID>:<date>:<hour>
	RedisSlotKeyPrefix = "court:slot:"

	// Batch size for startup sync - process 500 records at a time.
	// Pipeline is created and executed INSIDE the batch loop.
	syncBatchSize = 500
)

// SlotHoldService guards concurrent booking creation with Redis-held slot
// keys. The database remains the source of truth for booked hours; Redis
// keys exist so that thousands of concurrent booking attempts contend on
// Redis instead of DB row locks.
//
// Flow:
//   - HoldSlots claims all requested hours atomically (all-or-nothing)
//   - the booking row is then inserted; on DB failure the caller compensates
//     with ReleaseSlots
//   - SyncOnStartup rebuilds the keys for upcoming non-released bookings so
//     a Redis flush or restart cannot allow double-booking
type SlotHoldService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	holdTTL     time.Duration
}

func NewSlotHoldService(db *gorm.DB, redisClient *redis.Client, log *logrus.Logger, holdTTL time.Duration) *SlotHoldService {
	return &SlotHoldService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		holdTTL:     holdTTL,
	}
}

// SlotKey builds the Redis key for one court hour on one day.
func SlotKey(courtID uuid.UUID, date time.Time, hour int) string {
	return fmt.Sprintf("%s%s:%s:%d", RedisSlotKeyPrefix, courtID.String(), date.Format("2006-01-02"), hour)
}

// HoldSlots atomically claims every requested hour for the court and date.
// Claims nothing when any hour is contended and returns ErrSlotTaken.
func (s *SlotHoldService) HoldSlots(ctx context.Context, courtID uuid.UUID, date time.Time, hours entity.HourSet, holderID uuid.UUID) error {
	if len(hours) == 0 {
		return errors.New("no hours to hold")
	}

	keys := make([]string, len(hours))
	for i, hour := range hours {
		keys[i] = SlotKey(courtID, date, hour)
	}

	ttlSeconds := int(s.holdTTL.Seconds())
	result, err := holdSlotsScript.Run(ctx, s.redisClient, keys, holderID.String(), ttlSeconds).Int()
	if err != nil {
		s.log.Warnf("Failed to run slot hold script for court %s: %+v", courtID, err)
		return err
	}

	if result != 0 {
		s.log.Infof("Slot conflict: court=%s date=%s hour=%d", courtID, date.Format("2006-01-02"), hours[result-1])
		return ErrSlotTaken
	}

	return nil
}

// ExtendHold re-sets the slot keys with a TTL reaching the end of the booked
// day, so a successfully created booking keeps its hours blocked in Redis
// for the booking's whole lifetime.
func (s *SlotHoldService) ExtendHold(ctx context.Context, courtID uuid.UUID, date time.Time, hours entity.HourSet, holderID uuid.UUID) error {
	ttl := s.calculateTTL(date)

	pipe := s.redisClient.TxPipeline()
	for _, hour := range hours {
		pipe.Set(ctx, SlotKey(courtID, date, hour), holderID.String(), ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to extend slot hold for court %s: %+v", courtID, err)
		return err
	}
	return nil
}

// ReleaseSlots frees the hour keys, used both for compensation when the DB
// insert fails and when a booking is cancelled or rejected.
func (s *SlotHoldService) ReleaseSlots(ctx context.Context, courtID uuid.UUID, date time.Time, hours entity.HourSet) error {
	if len(hours) == 0 {
		return nil
	}

	keys := make([]string, len(hours))
	for i, hour := range hours {
		keys[i] = SlotKey(courtID, date, hour)
	}

	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to release slot keys for court %s: %+v", courtID, err)
		return err
	}
	return nil
}

// SyncOnStartup rebuilds slot keys for all upcoming non-released bookings
// from the database. Should be called BEFORE accepting traffic (during
// startup/disaster recovery). Processes records in batches of 500, creating
// and executing a new pipeline inside each batch loop to bound memory.
func (s *SlotHoldService) SyncOnStartup(ctx context.Context) error {
	s.log.Info("Starting slot hold re-sync from database...")
	startTime := time.Now()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		s.log.Warnf("Redis is not available, skipping sync: %+v", err)
		return fmt.Errorf("redis ping failed: %w", err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	offset := 0
	totalSynced := 0

	for {
		var bookings []entity.Booking

		err := s.db.
			Where("booking_date >= ? AND status NOT IN ?", today, []entity.BookingStatus{
				entity.BookingStatusCancelled,
				entity.BookingStatusRejected,
			}).
			Order("id").
			Limit(syncBatchSize).
			Offset(offset).
			Find(&bookings).Error

		if err != nil {
			s.log.Errorf("Failed to query bookings at offset %d: %+v", offset, err)
			return fmt.Errorf("query bookings at offset %d: %w", offset, err)
		}

		if len(bookings) == 0 {
			if offset == 0 {
				s.log.Info("No upcoming bookings found for sync")
			}
			break
		}

		pipe := s.redisClient.TxPipeline()
		for _, booking := range bookings {
			ttl := s.calculateTTL(booking.BookingDate)
			for _, hour := range booking.StartHours {
				pipe.Set(ctx, SlotKey(booking.CourtID, booking.BookingDate, hour), booking.ID.String(), ttl)
			}
		}

		if _, err := pipe.Exec(ctx); err != nil {
			s.log.Errorf("Failed to execute pipeline for batch at offset %d: %+v", offset, err)
			return fmt.Errorf("pipeline exec at offset %d: %w", offset, err)
		}

		totalSynced += len(bookings)

		if len(bookings) < syncBatchSize {
			break
		}
		offset += syncBatchSize
	}

	s.log.Infof("Slot hold re-sync complete: %d bookings in %s", totalSynced, time.Since(startTime))
	return nil
}

// calculateTTL returns a TTL reaching the end of the booked day, with a
// one-day floor so same-day bookings never expire mid-day.
func (s *SlotHoldService) calculateTTL(bookingDate time.Time) time.Duration {
	endOfDay := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day()+1, 2, 0, 0, 0, time.UTC)
	ttl := time.Until(endOfDay)
	if ttl < 24*time.Hour {
		ttl = 24 * time.Hour
	}
	return ttl
}
