package invites

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/homehub-app/homehub/internal/database"
	apperrors "github.com/homehub-app/homehub/pkg/errors"
)

// Repository manages pending members in the shared users collection.
// Index creation for that collection lives with the users feature.
type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *database.MongoDB) *Repository {
	return &Repository{collection: db.Database.Collection("users")}
}

func (r *Repository) CreatePending(ctx context.Context, invitee *Invitee) error {
	now := time.Now()
	invitee.Status = "pending"
	invitee.CreatedAt = now
	invitee.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, invitee)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return err
	}
	invitee.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *Repository) FindByID(ctx context.Context, householdID, userID string) (*Invitee, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrValidation
	}

	var invitee Invitee
	err = r.collection.FindOne(ctx, bson.M{"_id": oid, "householdId": householdID}).Decode(&invitee)
	if err == mongo.ErrNoDocuments {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invitee, nil
}

func (r *Repository) FindPending(ctx context.Context, householdID, userID string) (*Invitee, error) {
	invitee, err := r.FindByID(ctx, householdID, userID)
	if err != nil {
		return nil, err
	}
	if invitee.Status == "expired" {
		return nil, apperrors.ErrExpired
	}
	if invitee.Status != "pending" {
		return nil, apperrors.ErrNotFound
	}
	// A stale pending record is already expired even if the sweep has not
	// flipped its status yet.
	if !invitee.InviteExpiresAt.IsZero() && time.Now().After(invitee.InviteExpiresAt) {
		return nil, apperrors.ErrExpired
	}
	return invitee, nil
}

func (r *Repository) ExtendInvite(ctx context.Context, householdID, userID string, expiresAt time.Time) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrValidation
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "householdId": householdID, "status": bson.M{"$in": bson.A{"pending", "expired"}}},
		bson.M{"$set": bson.M{"status": "pending", "inviteExpiresAt": expiresAt, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Activate turns a pending member into an active one with credentials.
func (r *Repository) Activate(ctx context.Context, householdID, userID, hashedPassword string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrValidation
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "householdId": householdID, "status": "pending"},
		bson.M{"$set": bson.M{
			"status":    "active",
			"password":  hashedPassword,
			"updatedAt": time.Now(),
		}, "$unset": bson.M{"inviteExpiresAt": ""}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkExpired flips pending members whose invite window has passed.
func (r *Repository) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"status": "pending", "inviteExpiresAt": bson.M{"$lt": now}},
		bson.M{"$set": bson.M{"status": "expired", "updatedAt": now}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
