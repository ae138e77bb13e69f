// Package repository provides booking data access layer.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/baeza-marine/booking-service/internal/domain/model"
)

// BookingsRepositoryInterface defines the interface for booking repository operations.
type BookingsRepositoryInterface interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error)
	List(ctx context.Context, opts BookingQueryOptions) ([]*model.Booking, error)
	Count(ctx context.Context, opts BookingQueryOptions) (int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// BookingQueryOptions provides options for querying bookings.
type BookingQueryOptions struct {
	Status    string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

// BookingsRepository implements BookingsRepositoryInterface using MongoDB.
type BookingsRepository struct {
	collection *mongo.Collection
}

// NewBookingsRepository creates a new bookings repository.
func NewBookingsRepository(db *MongoDB) *BookingsRepository {
	return &BookingsRepository{
		collection: db.Bookings,
	}
}

// Create inserts a new booking request.
func (r *BookingsRepository) Create(ctx context.Context, booking *model.Booking) error {
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if booking.Status == "" {
		booking.Status = model.BookingStatusPending
	}

	_, err := r.collection.InsertOne(ctx, booking)
	return err
}

// FindByID finds a booking by ID.
func (r *BookingsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	var booking model.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (opts BookingQueryOptions) filter() bson.M {
	filter := bson.M{}
	if opts.Status != "" {
		filter["status"] = opts.Status
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["created_at"] = timeFilter
	}
	return filter
}

// List queries bookings, newest first.
func (r *BookingsRepository) List(ctx context.Context, opts BookingQueryOptions) ([]*model.Booking, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var bookings []*model.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Count returns the count of bookings matching the filter.
func (r *BookingsRepository) Count(ctx context.Context, opts BookingQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}

// UpdateStatus transitions a booking to the given status.
func (r *BookingsRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	return err
}
