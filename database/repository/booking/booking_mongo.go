package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"coworking/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
	guardColl   *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoBookingRepo on the given database and
// ensures its indexes.
func NewMongoBookingRepo(db *mongo.Database) (*MongoBookingRepo, error) {
	repo := &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		guardColl:   db.Collection("booking_guards"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (repo *MongoBookingRepo) ListConfirmed(ctx context.Context, date string, bookingType models.ResourceType) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	return repo.findConfirmed(ctx, date, bookingType)
}

func (repo *MongoBookingRepo) ListByDate(ctx context.Context, date string) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	return repo.find(ctx, bson.M{"booking_date": date})
}

// InsertIfAdmitted runs the read-decide-insert sequence in a transaction.
// Transactions alone do not stop two writers from inserting disjoint
// documents against the same snapshot, so each transaction first bumps a
// guard document keyed by (date, type): concurrent transactions on the same
// day and type then write-conflict, and WithTransaction retries the loser
// against the winner's committed booking.
func (repo *MongoBookingRepo) InsertIfAdmitted(ctx context.Context, booking *models.Booking, admit AdmitFunc) error {
	ctx, cancel := newContext(ctx, 15*time.Second)
	defer cancel()

	sess, err := repo.bookingColl.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	guardID := lockKey(booking.BookingDate, booking.BookingType)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := repo.guardColl.UpdateOne(sc,
			bson.M{"_id": guardID},
			bson.M{"$inc": bson.M{"version": 1}, "$set": bson.M{"updated_at": time.Now()}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return nil, fmt.Errorf("bump booking guard failed: %w", err)
		}

		existing, err := repo.findConfirmed(sc, booking.BookingDate, booking.BookingType)
		if err != nil {
			return nil, err
		}
		if err := admit(existing); err != nil {
			return nil, err
		}

		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return nil, fmt.Errorf("insert booking failed: %w", err)
		}
		return nil, nil
	}, txnOpts)
	return err
}

func (repo *MongoBookingRepo) Ping(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 2*time.Second)
	defer cancel()
	return repo.bookingColl.Database().Client().Ping(ctx, nil)
}

func (repo *MongoBookingRepo) findConfirmed(ctx context.Context, date string, bookingType models.ResourceType) ([]models.Booking, error) {
	return repo.find(ctx, bson.M{
		"booking_date": date,
		"booking_type": bookingType,
		"status":       models.StatusConfirmed,
	})
}

func (repo *MongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "arrival_time", Value: 1}})
	cursor, err := repo.bookingColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}
