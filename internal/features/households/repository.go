package households

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homehub-app/homehub/internal/database"
	apperrors "github.com/homehub-app/homehub/pkg/errors"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *database.MongoDB) *Repository {
	return &Repository{collection: db.Database.Collection("households")}
}

func (r *Repository) Create(ctx context.Context, h *Household) error {
	h.CreatedAt = time.Now()
	h.UpdatedAt = time.Now()
	if h.Plan == "" {
		h.Plan = PlanFree
	}

	result, err := r.collection.InsertOne(ctx, h)
	if err != nil {
		return err
	}

	h.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Household, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	var h Household
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&h)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &h, nil
}

func (r *Repository) SetOwner(ctx context.Context, id, ownerID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrValidation
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"ownerId": ownerID, "updatedAt": time.Now()},
	})
	return err
}

func (r *Repository) SetName(ctx context.Context, id, name string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrValidation
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"name": name, "updatedAt": time.Now()},
	})
	return err
}

func (r *Repository) SetPlan(ctx context.Context, id, plan string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrValidation
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"plan": plan, "updatedAt": time.Now()},
	})
	return err
}

func (r *Repository) SetStripeCustomer(ctx context.Context, id, customerID string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrValidation
	}

	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"stripeCustomerId": customerID, "updatedAt": time.Now()},
	})
	return err
}
