package models

import "time"

// ResourceType identifies what is being booked.
type ResourceType string

const (
	Coworking   ResourceType = "coworking"
	MeetingRoom ResourceType = "meeting_room"
)

// Valid reports whether t is one of the bookable resource types.
func (t ResourceType) Valid() bool {
	return t == Coworking || t == MeetingRoom
}

// StatusConfirmed is the only status a persisted booking can carry.
const StatusConfirmed = "confirmed"

// Booking represents a confirmed booking record.
type Booking struct {
	ID            string       `bson:"id" json:"id"`                         // Generated identifier (UUID)
	FirstName     string       `bson:"first_name" json:"first_name"`         // Booker's first name
	LastName      string       `bson:"last_name" json:"last_name"`           // Booker's last name
	Email         string       `bson:"email" json:"email"`                   // Booker's email
	BookingDate   string       `bson:"booking_date" json:"booking_date"`     // Calendar day in "YYYY-MM-DD" format
	ArrivalTime   string       `bson:"arrival_time" json:"arrival_time"`     // "HH:MM"
	DepartureTime string       `bson:"departure_time" json:"departure_time"` // "HH:MM"
	BookingType   ResourceType `bson:"booking_type" json:"booking_type"`     // coworking or meeting_room
	Duration      float64      `bson:"duration" json:"duration"`             // Duration in hours
	Cost          float64      `bson:"cost" json:"cost"`                     // Price in euros
	PriceDetail   string       `bson:"price_detail" json:"price_detail"`     // Human-readable breakdown
	Status        string       `bson:"status" json:"status"`                 // Always "confirmed"
	CreatedAt     time.Time    `bson:"created_at" json:"created_at"`
}
