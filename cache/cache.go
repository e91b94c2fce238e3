package cache

import (
	"encoding/json"
	"time"

	"github.com/lomepharma/pharma-garde/redis"
)

// Cache keys for the three listing views that CreateSearch, RecordResponse
// and ReplaceSchedule are required to invalidate.
const (
	KeyDirectory = "cache:directory"
	KeyDashboard = "cache:dashboard"
)

const listingTTL = 60 * time.Second

// KeyClient namespaces the client search page by its canonical identifier.
func KeyClient(phone string) string {
	return "cache:client:" + phone
}

// Get unmarshals a cached listing into dest. Returns false on miss, on a
// decode error, or when caching is disabled.
func Get(key string, dest interface{}) bool {
	if redis.Client == nil {
		return false
	}
	raw, err := redis.Client.Get(redis.Ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores a listing under key. Failures are ignored: the cache is an
// optimization, never a source of truth.
func Set(key string, value interface{}) {
	if redis.Client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	redis.Client.Set(redis.Ctx, key, raw, listingTTL)
}

// Invalidate drops the given keys.
func Invalidate(keys ...string) {
	if redis.Client == nil || len(keys) == 0 {
		return
	}
	redis.Client.Del(redis.Ctx, keys...)
}
