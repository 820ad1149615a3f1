package utils

import (
	"context"
	"sync"
	"time"
)

// Pinger is anything whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Store     bool      `json:"store"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings the store and, when configured, Redis, and records the
// result.
func CheckHealth(ctx context.Context, store Pinger, redis Pinger) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	status.Store = store.Ping(ctx) == nil
	if redis != nil {
		status.Redis = redis.Ping(ctx) == nil
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is done.
func StartHealthMonitor(ctx context.Context, store Pinger, redis Pinger) {
	go func() {
		ticker := time.NewTicker(HealthCheckInterval)
		defer ticker.Stop()

		CheckHealth(ctx, store, redis)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, store, redis)
			}
		}
	}()
}
