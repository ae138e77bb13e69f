// Package repository provides forfait catalog data access layer.
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

// ForfaitsRepositoryInterface defines the interface for forfait repository operations.
type ForfaitsRepositoryInterface interface {
	ListActive(ctx context.Context) ([]model.Forfait, error)
	List(ctx context.Context) ([]model.Forfait, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Forfait, error)
	FindByName(ctx context.Context, name string) (*model.Forfait, error)
	Create(ctx context.Context, forfait *model.Forfait) error
	Update(ctx context.Context, forfait *model.Forfait) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ForfaitsRepository implements ForfaitsRepositoryInterface using MongoDB.
type ForfaitsRepository struct {
	collection *mongo.Collection
}

// NewForfaitsRepository creates a new forfaits repository.
func NewForfaitsRepository(db *MongoDB) *ForfaitsRepository {
	return &ForfaitsRepository{
		collection: db.Forfaits,
	}
}

// ListActive returns the active forfaits ordered for display.
func (r *ForfaitsRepository) ListActive(ctx context.Context) ([]model.Forfait, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var forfaits []model.Forfait
	if err := cursor.All(ctx, &forfaits); err != nil {
		return nil, err
	}
	return forfaits, nil
}

// List returns all forfaits, active or not, ordered for display.
func (r *ForfaitsRepository) List(ctx context.Context) ([]model.Forfait, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var forfaits []model.Forfait
	if err := cursor.All(ctx, &forfaits); err != nil {
		return nil, err
	}
	return forfaits, nil
}

// FindByID finds a forfait by ID.
func (r *ForfaitsRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Forfait, error) {
	var forfait model.Forfait
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&forfait)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &forfait, nil
}

// FindByName finds a forfait by its catalog name.
func (r *ForfaitsRepository) FindByName(ctx context.Context, name string) (*model.Forfait, error) {
	var forfait model.Forfait
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&forfait)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &forfait, nil
}

// Create inserts a new forfait into the catalog.
func (r *ForfaitsRepository) Create(ctx context.Context, forfait *model.Forfait) error {
	forfait.CreatedAt = time.Now()
	forfait.UpdatedAt = time.Now()
	if forfait.ID.IsZero() {
		forfait.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, forfait)
	return err
}

// Update updates an existing forfait.
func (r *ForfaitsRepository) Update(ctx context.Context, forfait *model.Forfait) error {
	forfait.UpdatedAt = time.Now()
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": forfait.ID},
		bson.M{"$set": forfait},
	)
	return err
}

// Delete soft deletes a forfait by setting active to false. The forfait
// stays in the catalog so existing bookings keep a valid reference.
func (r *ForfaitsRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	return err
}
