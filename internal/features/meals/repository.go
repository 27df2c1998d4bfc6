package meals

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
	collection := db.Database.Collection("meals")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "householdId", Value: 1}, {Key: "date", Value: 1}}},
	}
	collection.Indexes().CreateMany(ctx, indexes)

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, meal *Meal) error {
	now := time.Now()
	meal.CreatedAt = now
	meal.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, meal)
	if err != nil {
		return err
	}
	meal.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns a date window of the household's plan, newest date first.
func (r *Repository) List(ctx context.Context, householdID, from, to string) ([]Meal, error) {
	filter := bson.M{"householdId": householdID}
	if from != "" || to != "" {
		dateRange := bson.M{}
		if from != "" {
			dateRange["$gte"] = from
		}
		if to != "" {
			dateRange["$lte"] = to
		}
		filter["date"] = dateRange
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	meals := []Meal{}
	if err := cursor.All(ctx, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *Repository) GetByID(ctx context.Context, householdID, id string) (*Meal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	var meal Meal
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "householdId": householdID}).Decode(&meal)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (r *Repository) Update(ctx context.Context, householdID, id string, updates bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrValidation
	}

	updates["updatedAt"] = time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "householdId": householdID},
		bson.M{"$set": updates},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
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
