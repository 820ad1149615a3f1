// Command seed fills the Mongo booking store with a week of demo bookings.
// Existing bookings of the seeded dates are removed first. Every booking
// goes through the booking service, so seeded data obeys the tariff and
// capacity rules.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"coworking/config"
	"coworking/database"
	bookingRepo "coworking/database/repository/booking"
	"coworking/models"
	"coworking/services/booking"
	"coworking/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var (
	firstNames = []string{"Camille", "Louis", "Inès", "Hugo", "Léa", "Nathan", "Chloé", "Jules"}
	lastNames  = []string{"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand"}
	// Arrival and departure pairs inside weekday and Saturday opening hours.
	slots = [][2]string{
		{"10:00", "12:00"}, {"10:00", "13:00"}, {"10:30", "14:30"},
		{"13:00", "16:30"}, {"14:00", "18:00"}, {"10:00", "17:00"},
	}
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	defer database.CloseDB(context.Background())

	repo, err := bookingRepo.NewMongoBookingRepo(db)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	svc := &booking.DefaultBookingService{Repo: repo, Capacity: cfg.CoworkingSeats, Logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Generate dates for the next 7 days.
	var weekDates []string
	today := time.Now()
	for i := 0; i < 7; i++ {
		weekDates = append(weekDates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}
	if _, err := db.Collection("bookings").DeleteMany(ctx, bson.M{"booking_date": bson.M{"$in": weekDates}}); err != nil {
		log.Fatalf("seed: failed to clear bookings: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	created, refused := 0, 0
	for _, date := range weekDates {
		for i := 0; i < 12; i++ {
			slot := slots[rng.Intn(len(slots))]
			kind := models.Coworking
			if i%4 == 0 {
				kind = models.MeetingRoom
			}
			quote, err := svc.Quote(models.QuoteRequest{BookingDate: date, ArrivalTime: slot[0], DepartureTime: slot[1], BookingType: kind})
			if err != nil {
				// Sunday, or a slot outside Saturday hours.
				refused++
				continue
			}
			first, last := firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))]
			_, err = svc.CreateBooking(ctx, models.CreateBookingRequest{
				FirstName:     first,
				LastName:      last,
				Email:         fmt.Sprintf("%s.%s@example.com", first, last),
				BookingDate:   date,
				ArrivalTime:   slot[0],
				DepartureTime: slot[1],
				Cost:          quote.Cost,
				BookingType:   kind,
			})
			if err != nil {
				refused++
				continue
			}
			created++
		}
	}
	logger.Info("seed: done", zap.Int("created", created), zap.Int("refused", refused), zap.Strings("dates", weekDates))
}
