package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/torislove/gomandap-server/internal/models"
)

const vendorCollection = "vendors"

// sensitiveProjection strips fields search must never return.
var sensitiveProjection = primitive.M{
	"password":  0,
	"fcmTokens": 0,
}

// MongoVendorRepository implements VendorRepository over a mongo database.
type MongoVendorRepository struct {
	db *mongo.Database
}

func NewMongoVendorRepository(db *mongo.Database) *MongoVendorRepository {
	return &MongoVendorRepository{db: db}
}

func (r *MongoVendorRepository) collection() *mongo.Collection {
	return r.db.Collection(vendorCollection)
}

// Search loads all vendors matching the compiled predicate. The caller's
// context bounds the query, so an aborted request cancels it.
func (r *MongoVendorRepository) Search(ctx context.Context, filter primitive.M) ([]models.Vendor, error) {
	opts := options.Find().SetProjection(sensitiveProjection)

	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendors: %w", err)
	}
	defer cursor.Close(ctx)

	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, fmt.Errorf("failed to decode vendors: %w", err)
	}
	return vendors, nil
}

func (r *MongoVendorRepository) List(ctx context.Context) ([]models.Vendor, error) {
	opts := options.Find().
		SetProjection(sensitiveProjection).
		SetSort(primitive.M{"createdAt": -1})

	cursor, err := r.collection().Find(ctx, primitive.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	defer cursor.Close(ctx)

	var vendors []models.Vendor
	if err := cursor.All(ctx, &vendors); err != nil {
		return nil, fmt.Errorf("failed to decode vendors: %w", err)
	}
	return vendors, nil
}

func (r *MongoVendorRepository) FindByEmail(ctx context.Context, email string) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.collection().FindOne(ctx, primitive.M{"email": email}).Decode(&vendor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVendorNotFound
		}
		return nil, fmt.Errorf("failed to find vendor: %w", err)
	}
	return &vendor, nil
}

// UpsertByEmail applies a $set/$unset pair as one atomic document update and
// returns the updated vendor.
func (r *MongoVendorRepository) UpsertByEmail(ctx context.Context, email string, set primitive.M, unset primitive.M) (*models.Vendor, error) {
	if set == nil {
		set = primitive.M{}
	}
	set["email"] = email

	update := primitive.M{
		"$set":         set,
		"$setOnInsert": primitive.M{"createdAt": time.Now()},
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var vendor models.Vendor
	err := r.collection().FindOneAndUpdate(ctx, primitive.M{"email": email}, update, opts).Decode(&vendor)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert vendor: %w", err)
	}
	return &vendor, nil
}
