package tasks

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
	collection := db.Database.Collection("tasks")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "householdId", Value: 1}}},
		{Keys: bson.D{{Key: "householdId", Value: 1}, {Key: "completed", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, task *Task) error {
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	task.Completed = false

	result, err := r.collection.InsertOne(ctx, task)
	if err != nil {
		return err
	}

	task.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id, householdID string) (*Task, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	var task Task
	err = r.collection.FindOne(ctx, bson.M{
		"_id":         objectID,
		"householdId": householdID,
	}).Decode(&task)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
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

func (r *Repository) List(ctx context.Context, householdID string, completed *bool) ([]Task, error) {
	filter := bson.M{"householdId": householdID}
	if completed != nil {
		filter["completed"] = *completed
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Task
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if result == nil {
		result = []Task{}
	}

	return result, nil
}

func (r *Repository) CountByHousehold(ctx context.Context, householdID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"householdId": householdID})
}

// ClearCompleted removes every completed task in the household and returns
// how many were deleted.
func (r *Repository) ClearCompleted(ctx context.Context, householdID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{
		"householdId": householdID,
		"completed":   true,
	})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
