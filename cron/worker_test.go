package cron

import (
	"context"
	"errors"
	"testing"

	"coworking/models"
	"coworking/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHandleConfirmationTask(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := HandleConfirmationTask(zap.New(core))

	task, _, err := tasks.NewConfirmationTask(models.Booking{ID: "b1", Email: "ada@example.com", BookingDate: "2024-01-08"})
	if err != nil {
		t.Fatal(err)
	}
	if err := handler(context.Background(), task); err != nil {
		t.Fatalf("handler: %v", err)
	}
	entries := logs.FilterMessage("booking confirmation").All()
	if len(entries) != 1 || entries[0].ContextMap()["bookingId"] != "b1" {
		t.Fatalf("logged %+v", logs.All())
	}
}

func TestHandleConfirmationTaskSkipsRetryOnBadPayload(t *testing.T) {
	handler := HandleConfirmationTask(zap.NewNop())
	err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingConfirmed, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("err = %v", err)
	}
}
