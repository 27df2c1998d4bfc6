package training

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
	modules  *mongo.Collection
	progress *mongo.Collection
}

func NewRepository(db *database.MongoDB) *Repository {
	modules := db.Database.Collection("training_modules")
	progress := db.Database.Collection("training_progress")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	modules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "householdId", Value: 1}},
	})
	progress.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "moduleId", Value: 1}, {Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return &Repository{modules: modules, progress: progress}
}

func (r *Repository) CreateModule(ctx context.Context, module *Module) error {
	now := time.Now()
	module.CreatedAt = now
	module.UpdatedAt = now
	if module.Steps == nil {
		module.Steps = []string{}
	}

	result, err := r.modules.InsertOne(ctx, module)
	if err != nil {
		return err
	}
	module.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) ListModules(ctx context.Context, householdID string) ([]Module, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.modules.Find(ctx, bson.M{"householdId": householdID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	modules := []Module{}
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *Repository) GetModule(ctx context.Context, householdID, id string) (*Module, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	var module Module
	err = r.modules.FindOne(ctx, bson.M{"_id": oid, "householdId": householdID}).Decode(&module)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *Repository) UpdateModule(ctx context.Context, householdID, id string, updates bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrValidation
	}

	updates["updatedAt"] = time.Now()
	result, err := r.modules.UpdateOne(ctx,
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

func (r *Repository) DeleteModule(ctx context.Context, householdID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrValidation
	}

	result, err := r.modules.DeleteOne(ctx, bson.M{"_id": oid, "householdId": householdID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	// Progress rows for a removed module are dead weight.
	r.progress.DeleteMany(ctx, bson.M{"moduleId": id, "householdId": householdID})
	return nil
}

// SetProgress upserts the member's completion state for a module.
func (r *Repository) SetProgress(ctx context.Context, householdID, moduleID, userID string, completed bool) (*Progress, error) {
	now := time.Now()
	set := bson.M{
		"householdId": householdID,
		"moduleId":    moduleID,
		"userId":      userID,
		"completed":   completed,
		"updatedAt":   now,
	}
	update := bson.M{"$set": set}
	if completed {
		set["completedAt"] = now
	} else {
		update["$unset"] = bson.M{"completedAt": ""}
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var progress Progress
	err := r.progress.FindOneAndUpdate(ctx,
		bson.M{"moduleId": moduleID, "userId": userID},
		update,
		opts,
	).Decode(&progress)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *Repository) ListProgress(ctx context.Context, householdID, userID string) ([]Progress, error) {
	cursor, err := r.progress.Find(ctx, bson.M{"householdId": householdID, "userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []Progress{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
