package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coworking/config"
	"coworking/models"
	"coworking/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt returns the asynq connection options for the queue DB.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitConfirmationWorker runs the asynq worker in background until ctx is
// done.
func InitConfirmationWorker(ctx context.Context, logger *zap.Logger) {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmed, HandleConfirmationTask(logger))

	go func() {
		logger.Info("confirmation worker: starting")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Start(mux); err != nil {
				logger.Warn("confirmation worker: failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Error("confirmation worker: giving up")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
				continue
			}
			break
		}

		<-ctx.Done()
		srv.Shutdown()
		logger.Info("confirmation worker: stopped")
	}()
}

// HandleConfirmationTask records the confirmation notice for the booker.
func HandleConfirmationTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			// A malformed payload will never succeed; do not retry it.
			return fmt.Errorf("invalid confirmation payload: %v: %w", err, asynq.SkipRetry)
		}
		logger.Info("booking confirmation",
			zap.String("bookingId", p.BookingID),
			zap.String("email", p.Email),
			zap.String("date", p.BookingDate),
			zap.String("from", p.ArrivalTime),
			zap.String("to", p.DepartureTime),
			zap.String("type", string(p.BookingType)),
			zap.Float64("cost", p.Cost),
		)
		return nil
	}
}
