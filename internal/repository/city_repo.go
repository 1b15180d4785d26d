package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/torislove/gomandap-server/internal/models"
)

const popularCityCollection = "popular_cities"

// MongoCityRepository implements CityRepository.
type MongoCityRepository struct {
	db *mongo.Database
}

func NewMongoCityRepository(db *mongo.Database) *MongoCityRepository {
	return &MongoCityRepository{db: db}
}

func (r *MongoCityRepository) ActiveCities(ctx context.Context) ([]models.PopularCity, error) {
	cursor, err := r.db.Collection(popularCityCollection).Find(ctx, primitive.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to find popular cities: %w", err)
	}
	defer cursor.Close(ctx)

	var cities []models.PopularCity
	if err := cursor.All(ctx, &cities); err != nil {
		return nil, fmt.Errorf("failed to decode popular cities: %w", err)
	}
	return cities, nil
}
