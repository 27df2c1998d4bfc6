package essentials

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
	collection := db.Database.Collection("essentials")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "householdId", Value: 1}, {Key: "kind", Value: 1}}},
	}
	collection.Indexes().CreateMany(ctx, indexes)

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, essential *Essential) error {
	now := time.Now()
	essential.CreatedAt = now
	essential.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, essential)
	if err != nil {
		return err
	}
	essential.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) List(ctx context.Context, householdID, kind string) ([]Essential, error) {
	filter := bson.M{"householdId": householdID}
	if kind != "" {
		filter["kind"] = kind
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	essentials := []Essential{}
	if err := cursor.All(ctx, &essentials); err != nil {
		return nil, err
	}
	return essentials, nil
}

func (r *Repository) Update(ctx context.Context, householdID, id string, updates bson.M) (*Essential, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	updates["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var essential Essential
	err = r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "householdId": householdID},
		bson.M{"$set": updates},
		opts,
	).Decode(&essential)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &essential, nil
}

func (r *Repository) Delete(ctx context.Context, householdID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrValidation
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid, "householdId": householdID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
