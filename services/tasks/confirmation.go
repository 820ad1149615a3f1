package tasks

import (
	"encoding/json"
	"time"

	"coworking/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmed = "booking:confirmed"

// Enqueuer is the part of *asynq.Client the booking service needs.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// NewConfirmationTask builds the task announcing a persisted booking.
func NewConfirmationTask(b models.Booking) (*asynq.Task, []asynq.Option, error) {
	payload, err := json.Marshal(models.ConfirmationPayload{
		BookingID:     b.ID,
		Email:         b.Email,
		FirstName:     b.FirstName,
		BookingDate:   b.BookingDate,
		ArrivalTime:   b.ArrivalTime,
		DepartureTime: b.DepartureTime,
		BookingType:   b.BookingType,
		Cost:          b.Cost,
	})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmed, payload)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
		// One notice per booking even if the enqueue is retried.
		asynq.TaskID("confirmation:" + b.ID),
	}
	return task, opts, nil
}
