package config

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RDB is nil when REDIS_ADDR isn't set — every helper below degrades to a
// cache miss, so the app runs fine without redis.
var RDB *redis.Client

var cacheCtx = context.Background()

func ConnectCache() {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		log.Println("REDIS_ADDR not set; listing cache disabled")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := RDB.Ping(cacheCtx).Err(); err != nil {
		log.Printf("warning: redis ping failed (%v); listing cache disabled", err)
		RDB = nil
	}
}

// CacheGet unmarshals the cached JSON value into dest; false on any miss.
func CacheGet(key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}
	val, err := RDB.Get(cacheCtx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func CacheSet(key string, value interface{}, ttl time.Duration) {
	if RDB == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	RDB.Set(cacheCtx, key, data, ttl)
}

// CacheForget drops keys by exact name; used after admin writes so the
// public listings don't serve stale data for the full TTL.
func CacheForget(keys ...string) {
	if RDB == nil || len(keys) == 0 {
		return
	}
	RDB.Del(cacheCtx, keys...)
}
