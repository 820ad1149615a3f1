package draft

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"coworking/models"
)

type recorder struct {
	mu      sync.Mutex
	results []Result
	got     chan struct{}
}

func newRecorder() *recorder { return &recorder{got: make(chan struct{}, 16)} }

func (r *recorder) deliver(res Result) {
	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()
	r.got <- struct{}{}
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.got:
	case <-time.After(2 * time.Second):
		t.Fatal("no result delivered")
	}
}

func (r *recorder) snapshot() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Result(nil), r.results...)
}

func req(arrival string) models.AvailabilityRequest {
	return models.AvailabilityRequest{BookingDate: "2024-01-08", ArrivalTime: arrival, DepartureTime: "18:00", BookingType: models.Coworking}
}

func TestCheckerDebounces(t *testing.T) {
	var mu sync.Mutex
	var calls []string
	check := func(_ context.Context, r models.AvailabilityRequest) (models.AvailabilityResult, error) {
		mu.Lock()
		calls = append(calls, r.ArrivalTime)
		mu.Unlock()
		return models.AvailabilityResult{Available: true, Message: r.ArrivalTime}, nil
	}
	rec := newRecorder()
	c := NewChecker(check, 30*time.Millisecond, rec.deliver)

	c.Schedule(req("09:00"))
	c.Schedule(req("10:00"))
	last := c.Schedule(req("11:00"))
	rec.wait(t)

	// Give a wrongly surviving timer time to fire.
	time.Sleep(60 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 || calls[0] != "11:00" {
		t.Fatalf("calls = %v", calls)
	}
	got := rec.snapshot()
	if len(got) != 1 || got[0].Generation != last || got[0].Availability.Message != "11:00" {
		t.Fatalf("results = %+v", got)
	}
}

func TestCheckerDropsStaleResponses(t *testing.T) {
	release := make(chan struct{})
	started := make(chan string, 2)
	check := func(ctx context.Context, r models.AvailabilityRequest) (models.AvailabilityResult, error) {
		started <- r.ArrivalTime
		if r.ArrivalTime == "09:00" {
			// The slow first call ignores cancellation and answers late.
			<-release
		}
		return models.AvailabilityResult{Available: true, Message: r.ArrivalTime}, nil
	}
	rec := newRecorder()
	c := NewChecker(check, time.Millisecond, rec.deliver)

	c.Schedule(req("09:00"))
	if got := <-started; got != "09:00" {
		t.Fatalf("started %q", got)
	}
	second := c.Schedule(req("10:00"))
	rec.wait(t)
	close(release)
	time.Sleep(30 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 || got[0].Generation != second || got[0].Availability.Message != "10:00" {
		t.Fatalf("results = %+v", got)
	}
}

func TestCheckerCancelsInFlight(t *testing.T) {
	cancelled := make(chan struct{})
	started := make(chan struct{}, 1)
	check := func(ctx context.Context, r models.AvailabilityRequest) (models.AvailabilityResult, error) {
		started <- struct{}{}
		<-ctx.Done()
		close(cancelled)
		return models.AvailabilityResult{}, ctx.Err()
	}
	c := NewChecker(check, time.Millisecond, func(Result) { t.Error("cancelled check delivered") })

	c.Schedule(req("09:00"))
	<-started
	c.Stop()
	select {
	case <-cancelled:
	case <-time.After(2 * time.Second):
		t.Fatal("in-flight check not cancelled")
	}
	time.Sleep(20 * time.Millisecond)
}

func TestCheckerReportsFailureAsUnavailable(t *testing.T) {
	boom := errors.New("network unreachable")
	check := func(context.Context, models.AvailabilityRequest) (models.AvailabilityResult, error) {
		return models.AvailabilityResult{}, boom
	}
	rec := newRecorder()
	c := NewChecker(check, time.Millisecond, rec.deliver)
	c.Schedule(req("09:00"))
	rec.wait(t)

	got := rec.snapshot()[0]
	if got.Availability.Available || !errors.Is(got.Err, boom) || got.Availability.Message != boom.Error() {
		t.Fatalf("result = %+v", got)
	}
}
