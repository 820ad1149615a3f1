// Command client drives the booking API the way the widget does: it
// recomputes the quote locally on every field change, runs a debounced
// advisory availability check and submits the booking.
//
//	client -date 2026-11-02 -arrival 09:00 -departure 13:00 -first Ada -last L -email ada@example.com -submit
//	client -watch            # read field=value lines from stdin
//	client -admin-token ops  # print an admin JWT signed with JWT_SECRET
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"coworking/models"
	"coworking/services/draft"
	"coworking/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	viper.AutomaticEnv()
	viper.SetDefault("BOOKING_API_URL", "http://localhost:8080")

	var (
		baseURL    = flag.String("url", viper.GetString("BOOKING_API_URL"), "booking API base URL")
		apiKey     = flag.String("apikey", viper.GetString("BOOKING_API_KEY"), "key sent as bearer and apikey")
		date       = flag.String("date", "", "booking date YYYY-MM-DD")
		arrival    = flag.String("arrival", "", "arrival time HH:MM")
		departure  = flag.String("departure", "", "departure time HH:MM")
		kind       = flag.String("type", string(models.Coworking), "coworking or meeting_room")
		first      = flag.String("first", "", "first name")
		last       = flag.String("last", "", "last name")
		email      = flag.String("email", "", "email")
		submit     = flag.Bool("submit", false, "submit the booking")
		watch      = flag.Bool("watch", false, "read field=value edits from stdin")
		adminToken = flag.String("admin-token", "", "print an admin token for this subject and exit")
	)
	flag.Parse()

	logger := utils.GetLogger()
	defer logger.Sync()

	if *adminToken != "" {
		token, err := utils.GenerateToken(viper.GetString("JWT_SECRET"), *adminToken, utils.RoleAdmin, 24*time.Hour)
		if err != nil {
			logger.Fatal("admin token", zap.Error(err))
		}
		fmt.Println(token)
		return
	}

	client := draft.NewClient(*baseURL, *apiKey)
	d := draft.New().
		WithBookingDate(*date).
		WithArrivalTime(*arrival).
		WithDepartureTime(*departure).
		WithType(models.ResourceType(*kind)).
		WithFirstName(*first).
		WithLastName(*last).
		WithEmail(*email)

	if *watch {
		d = runWatch(client, d)
	}

	q := draft.Recompute(d)
	printQuote(q)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if q.TimeError == "" && q.Cost > 0 {
		res, err := client.CheckAvailability(ctx, d.AvailabilityRequest())
		if err != nil {
			logger.Error("availability check failed", zap.Error(err))
		} else {
			printAvailability(res)
		}
	}

	if !*submit {
		return
	}
	if !d.Ready(q) {
		fmt.Fprintln(os.Stderr, "form incomplete: name, email, date, times and a valid slot are required")
		os.Exit(2)
	}
	b, err := client.CreateBooking(ctx, d.CreateRequest(q))
	if err != nil {
		fmt.Fprintln(os.Stderr, "booking refused:", err)
		os.Exit(1)
	}
	fmt.Printf("booking confirmed: id=%s %s %s-%s %.2f€\n", b.ID, b.BookingDate, b.ArrivalTime, b.DepartureTime, b.Cost)
}

// runWatch applies field=value edits from stdin until EOF. Each edit
// recomputes the quote and reschedules the advisory check.
func runWatch(client *draft.Client, d draft.Draft) draft.Draft {
	checker := draft.NewChecker(client.CheckAvailability, draft.DefaultDebounce, func(r draft.Result) {
		fmt.Printf("[check #%d] ", r.Generation)
		printAvailability(r.Availability)
	})
	defer checker.Stop()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		field, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			fmt.Fprintln(os.Stderr, "expected field=value")
			continue
		}
		next, known := apply(d, strings.TrimSpace(field), strings.TrimSpace(value))
		if !known {
			fmt.Fprintf(os.Stderr, "unknown field %q\n", field)
			continue
		}
		d = next
		q := draft.Recompute(d)
		printQuote(q)
		if q.TimeError == "" && q.Cost > 0 {
			checker.Schedule(d.AvailabilityRequest())
		} else {
			checker.Stop()
		}
	}
	// Let a pending check land before the final summary.
	time.Sleep(draft.DefaultDebounce + time.Second)
	return d
}

func apply(d draft.Draft, field, value string) (draft.Draft, bool) {
	switch field {
	case "first":
		return d.WithFirstName(value), true
	case "last":
		return d.WithLastName(value), true
	case "email":
		return d.WithEmail(value), true
	case "date":
		return d.WithBookingDate(value), true
	case "arrival":
		return d.WithArrivalTime(value), true
	case "departure":
		return d.WithDepartureTime(value), true
	case "type":
		return d.WithType(models.ResourceType(value)), true
	}
	return d, false
}

func printQuote(q draft.Quote) {
	switch {
	case q.TimeError != "":
		fmt.Println("slot:", q.TimeError)
	case q.Cost > 0:
		fmt.Printf("price: %.2f€ (%s), %.2fh\n", q.Cost, q.Detail, q.DurationHours)
	}
}

func printAvailability(res models.AvailabilityResult) {
	if res.Available {
		fmt.Println("available:", res.Message)
		return
	}
	fmt.Println("unavailable:", res.Message)
}
