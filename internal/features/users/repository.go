package users

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/homehub-app/homehub/internal/database"
	apperrors "github.com/homehub-app/homehub/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *database.MongoDB) *Repository {
	collection := db.Database.Collection("users")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "householdId", Value: 1}}},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return &Repository{collection: collection}
}

func (r *Repository) List(ctx context.Context, householdID string) ([]Member, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"householdId": householdID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []Member
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}

	if members == nil {
		members = []Member{}
	}

	return members, nil
}

func (r *Repository) GetByID(ctx context.Context, id, householdID string) (*Member, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	var member Member
	err = r.collection.FindOne(ctx, bson.M{
		"_id":         objectID,
		"householdId": householdID,
	}).Decode(&member)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (r *Repository) Update(ctx context.Context, id, householdID string, update bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrValidation
	}

	update["updatedAt"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID, "householdId": householdID},
		bson.M{"$set": update},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

func (r *Repository) Delete(ctx context.Context, id, householdID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrValidation
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{
		"_id":         objectID,
		"householdId": householdID,
	})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// DeviceTokens returns the member's registered push tokens.
func (r *Repository) DeviceTokens(ctx context.Context, userID string) ([]string, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	var member Member
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&member)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return member.DeviceTokens, nil
}

// AddDeviceToken registers a push token for the member, deduplicated.
func (r *Repository) AddDeviceToken(ctx context.Context, userID, deviceToken string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrValidation
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$addToSet": bson.M{"deviceTokens": deviceToken},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
	return err
}

func (r *Repository) SetAvatar(ctx context.Context, userID, url, publicID string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrValidation
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"avatarUrl": url, "avatarPublicId": publicID, "updatedAt": time.Now()},
	})
	return err
}
