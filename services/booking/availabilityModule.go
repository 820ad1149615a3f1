package booking

import (
	"fmt"
	"sort"

	"coworking/models"
)

// DefaultCoworkingCapacity is the number of desks in the shared space.
const DefaultCoworkingCapacity = 20

type occupancyEvent struct {
	at    int
	delta int
}

// peakOccupancy sweeps arrival(+1)/departure(-1) events of the candidate and
// every existing interval overlapping it, and returns the highest concurrent
// count. At equal timestamps departures are applied first, matching the
// half-open model where a booking ending at T does not occupy T.
func peakOccupancy(candidate models.TimeInterval, existing []models.TimeInterval) int {
	events := []occupancyEvent{{candidate.Start, 1}, {candidate.End, -1}}
	for _, iv := range existing {
		if !Overlaps(candidate, iv) {
			continue
		}
		events = append(events, occupancyEvent{iv.Start, 1}, occupancyEvent{iv.End, -1})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].at != events[j].at {
			return events[i].at < events[j].at
		}
		return events[i].delta < events[j].delta
	})

	current, peak := 0, 0
	for _, e := range events {
		current += e.delta
		if current > peak {
			peak = current
		}
	}
	return peak
}

// CheckCoworking evaluates a shared-space request against capacity.
func CheckCoworking(candidate models.TimeInterval, existing []models.TimeInterval, capacity int) models.AvailabilityResult {
	peak := peakOccupancy(candidate, existing)
	if peak > capacity {
		zero := 0
		return models.AvailabilityResult{Available: false, Message: msgCapacityReached, SpotsRemaining: &zero}
	}
	spots := max(0, capacity-peak+1)
	return models.AvailabilityResult{Available: true, Message: spotsMessage(spots), SpotsRemaining: &spots}
}

// CheckMeetingRoom evaluates an exclusive room request.
func CheckMeetingRoom(candidate models.TimeInterval, existing []models.TimeInterval) models.AvailabilityResult {
	for _, iv := range existing {
		if Overlaps(candidate, iv) {
			return models.AvailabilityResult{Available: false, Message: msgRoomTaken}
		}
	}
	return models.AvailabilityResult{Available: true, Message: msgRoomAvailable}
}

// Evaluate runs the checker matching t over the stored bookings.
func Evaluate(t models.ResourceType, candidate models.TimeInterval, existing []models.Booking, capacity int) (models.AvailabilityResult, error) {
	intervals, err := bookingIntervals(existing)
	if err != nil {
		return models.AvailabilityResult{}, err
	}
	switch t {
	case models.Coworking:
		return CheckCoworking(candidate, intervals, capacity), nil
	case models.MeetingRoom:
		return CheckMeetingRoom(candidate, intervals), nil
	default:
		return models.AvailabilityResult{Available: false, Message: msgInvalidType}, nil
	}
}

// Admit is the authoritative form of Evaluate used right before insert. It
// returns a conflict error carrying the submission wording when the
// candidate cannot be placed.
func Admit(t models.ResourceType, candidate models.TimeInterval, existing []models.Booking, capacity int) error {
	res, err := Evaluate(t, candidate, existing, capacity)
	if err != nil {
		return NewInternalError(msgCreateFailed, err)
	}
	if res.Available {
		return nil
	}
	if t == models.MeetingRoom {
		return NewConflictError(msgRoomConflict)
	}
	return NewConflictError(msgCoworkingFull)
}

func bookingIntervals(bookings []models.Booking) ([]models.TimeInterval, error) {
	out := make([]models.TimeInterval, 0, len(bookings))
	for _, b := range bookings {
		iv, err := ParseInterval(b.ArrivalTime, b.DepartureTime)
		if err != nil {
			return nil, fmt.Errorf("stored booking %s: %w", b.ID, err)
		}
		out = append(out, iv)
	}
	return out, nil
}

func spotsMessage(spots int) string {
	if spots > 1 {
		return fmt.Sprintf("%d places disponibles", spots)
	}
	return fmt.Sprintf("%d place disponible", spots)
}
