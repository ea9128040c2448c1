package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/OpenHoursHQ/openhours/internal/hours"
)

var Rdb *redis.Client

const hoursTTL = time.Hour

func Init(address, username, password string) {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})
}

func hoursKey(businessID int) string {
	return fmt.Sprintf("business:%d:hours", businessID)
}

// GetWorkingHours returns the cached normalized schedule, if any.
func GetWorkingHours(ctx context.Context, businessID int) (hours.WorkingHours, bool) {
	if Rdb == nil {
		return hours.WorkingHours{}, false
	}
	payload, err := Rdb.Get(ctx, hoursKey(businessID)).Bytes()
	if err != nil {
		return hours.WorkingHours{}, false
	}
	var working hours.WorkingHours
	if err := json.Unmarshal(payload, &working); err != nil {
		log.Error().Err(err).Int("business_id", businessID).Msg("failed to decode cached hours")
		return hours.WorkingHours{}, false
	}
	return working, true
}

// SetWorkingHours caches a normalized schedule.
func SetWorkingHours(ctx context.Context, businessID int, working hours.WorkingHours) {
	if Rdb == nil {
		return
	}
	payload, err := json.Marshal(working)
	if err != nil {
		log.Error().Err(err).Int("business_id", businessID).Msg("failed to encode hours for cache")
		return
	}
	if err := Rdb.Set(ctx, hoursKey(businessID), payload, hoursTTL).Err(); err != nil {
		log.Error().Err(err).Int("business_id", businessID).Msg("failed to cache hours")
	}
}

// InvalidateWorkingHours drops the cached schedule after a write.
func InvalidateWorkingHours(ctx context.Context, businessID int) {
	if Rdb == nil {
		return
	}
	if err := Rdb.Del(ctx, hoursKey(businessID)).Err(); err != nil {
		log.Error().Err(err).Int("business_id", businessID).Msg("failed to invalidate cached hours")
	}
}
