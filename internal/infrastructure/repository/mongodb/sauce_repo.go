package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Piiquante/internal/domain/contract"
	"github.com/mikiasgoitom/Piiquante/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SauceRepository represents the MongoDB implementation of the ISauceRepository interface.
type SauceRepository struct {
	collection *mongo.Collection
}

var _ contract.ISauceRepository = (*SauceRepository)(nil)

// NewSauceRepository creates and returns a new SauceRepository instance.
func NewSauceRepository(db *mongo.Database) *SauceRepository {
	return &SauceRepository{
		collection: db.Collection("sauces"),
	}
}

// CreateSauce inserts a new sauce document.
func (r *SauceRepository) CreateSauce(ctx context.Context, sauce *entity.Sauce) error {
	_, err := r.collection.InsertOne(ctx, sauce)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return contract.ErrDuplicateKey
		}
		return fmt.Errorf("failed to create sauce: %w", err)
	}
	return nil
}

// GetSauceByID retrieves a sauce by its ID.
func (r *SauceRepository) GetSauceByID(ctx context.Context, id string) (*entity.Sauce, error) {
	var sauce entity.Sauce
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&sauce)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sauce by ID: %w", err)
	}
	return &sauce, nil
}

// GetSauces retrieves every sauce, oldest first.
func (r *SauceRepository) GetSauces(ctx context.Context) ([]*entity.Sauce, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find sauces: %w", err)
	}
	defer cursor.Close(ctx)

	sauces := make([]*entity.Sauce, 0)
	for cursor.Next(ctx) {
		var sauce entity.Sauce
		if err := cursor.Decode(&sauce); err != nil {
			return nil, fmt.Errorf("failed to decode sauce: %w", err)
		}
		sauces = append(sauces, &sauce)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return sauces, nil
}

// UpdateSauceDetails sets the owner-editable fields of a sauce.
func (r *SauceRepository) UpdateSauceDetails(ctx context.Context, id string, details entity.SauceDetails) error {
	update := bson.M{"$set": bson.M{
		"name":         details.Name,
		"manufacturer": details.Manufacturer,
		"description":  details.Description,
		"main_pepper":  details.MainPepper,
		"image_url":    details.ImageURL,
		"heat":         details.Heat,
		"updated_at":   time.Now(),
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update sauce: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// DeleteSauce removes a sauce document.
func (r *SauceRepository) DeleteSauce(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete sauce: %w", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

// SaveVotes writes counters and voter sets in one single-document update,
// conditioned on the version the caller read.
func (r *SauceRepository) SaveVotes(ctx context.Context, sauce *entity.Sauce) error {
	now := time.Now()
	filter := bson.M{"_id": sauce.ID, "version": sauce.Version}
	update := bson.M{
		"$set": bson.M{
			"likes":          sauce.Likes,
			"dislikes":       sauce.Dislikes,
			"users_liked":    sauce.UsersLiked,
			"users_disliked": sauce.UsersDisliked,
			"updated_at":     now,
		},
		"$inc": bson.M{"version": 1},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to save votes: %w", err)
	}
	if res.MatchedCount == 0 {
		count, err := r.collection.CountDocuments(ctx, bson.M{"_id": sauce.ID}, options.Count().SetLimit(1))
		if err != nil {
			return fmt.Errorf("failed to check sauce existence: %w", err)
		}
		if count == 0 {
			return contract.ErrNotFound
		}
		return contract.ErrVersionConflict
	}

	sauce.Version++
	sauce.UpdatedAt = now
	return nil
}
