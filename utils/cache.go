// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"coworking/config"

	"github.com/go-redis/redis/v8"
)

// LockClient is the Redis client dedicated to booking locks.
var LockClient *redis.Client

// InitLockClient initializes the Redis client used for distributed booking
// locks (DB from REDIS_LOCK_DB).
func InitLockClient() {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LockClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Lock): %v", err)
	}
}

// GetLockClient returns the Redis client for booking locks.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitLockClient()
	}
	return LockClient
}
