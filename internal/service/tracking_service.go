package service

import (
	"context"
	"strconv"
	"time"

	"ombaro-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for the live tracking mirror
	RedisBookingStatusPrefix     = "booking:status:"
	RedisTherapistLocationPrefix = "therapist:location:"

	// The mirror is a cache over Postgres, not the system of record, so
	// entries expire on their own.
	bookingStatusTTL     = 24 * time.Hour
	therapistLocationTTL = 15 * time.Minute
)

// TherapistLocation is a live position report.
type TherapistLocation struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LiveTrackingService mirrors booking status and therapist positions into
// Redis so the tracking screen polls the cache instead of Postgres. Postgres
// stays authoritative; a cache miss falls back to the DB row.
type LiveTrackingService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewLiveTrackingService(redisClient *redis.Client, log *logrus.Logger) *LiveTrackingService {
	return &LiveTrackingService{
		redisClient: redisClient,
		log:         log,
	}
}

// PublishBookingStatus mirrors a booking's lifecycle state. Failures are
// logged, not returned: the DB write already succeeded and the mirror will
// self-heal on the next transition.
func (s *LiveTrackingService) PublishBookingStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) {
	key := RedisBookingStatusPrefix + bookingID.String()
	if err := s.redisClient.Set(ctx, key, string(status), bookingStatusTTL).Err(); err != nil {
		s.log.Warnf("Failed to mirror booking status for %s: %+v", bookingID, err)
	}
}

// GetBookingStatus reads the mirrored state. The bool is false on a cache
// miss; callers fall back to the booking row.
func (s *LiveTrackingService) GetBookingStatus(ctx context.Context, bookingID uuid.UUID) (entity.BookingStatus, bool) {
	key := RedisBookingStatusPrefix + bookingID.String()
	val, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Failed to read mirrored booking status for %s: %+v", bookingID, err)
		}
		return "", false
	}
	return entity.BookingStatus(val), true
}

// PublishTherapistLocation mirrors a position report with a short TTL; a
// therapist who stops reporting drops off the map.
func (s *LiveTrackingService) PublishTherapistLocation(ctx context.Context, therapistID uuid.UUID, lat, lng float64) error {
	key := RedisTherapistLocationPrefix + therapistID.String()

	pipe := s.redisClient.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"latitude":   lat,
		"longitude":  lng,
		"updated_at": time.Now().Unix(),
	})
	pipe.Expire(ctx, key, therapistLocationTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to mirror therapist location for %s: %+v", therapistID, err)
		return err
	}
	return nil
}

// GetTherapistLocation reads the last mirrored position. The bool is false
// when no recent report exists.
func (s *LiveTrackingService) GetTherapistLocation(ctx context.Context, therapistID uuid.UUID) (*TherapistLocation, bool) {
	key := RedisTherapistLocationPrefix + therapistID.String()
	fields, err := s.redisClient.HGetAll(ctx, key).Result()
	if err != nil {
		s.log.Warnf("Failed to read therapist location for %s: %+v", therapistID, err)
		return nil, false
	}
	if len(fields) == 0 {
		return nil, false
	}

	lat, err := strconv.ParseFloat(fields["latitude"], 64)
	if err != nil {
		return nil, false
	}
	lng, err := strconv.ParseFloat(fields["longitude"], 64)
	if err != nil {
		return nil, false
	}

	loc := &TherapistLocation{Latitude: lat, Longitude: lng}
	if ts, err := strconv.ParseInt(fields["updated_at"], 10, 64); err == nil {
		loc.UpdatedAt = time.Unix(ts, 0)
	}
	return loc, true
}

// ClearBooking drops the mirror entry once a booking reaches a final state.
func (s *LiveTrackingService) ClearBooking(ctx context.Context, bookingID uuid.UUID) {
	key := RedisBookingStatusPrefix + bookingID.String()
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.log.Warnf("Failed to clear booking mirror for %s: %+v", bookingID, err)
	}
}
