// Package authorstore persists external authors. Every author belongs to the
// lead who created it, and all reads and writes on the lead surface are
// scoped by that ownership.
package authorstore

import (
	"context"
	"time"

	"github.com/dalemusser/labhub/internal/app/system/normalize"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("authors")}
}

// Create inserts a new author owned by the given lead.
func (s *Store) Create(ctx context.Context, a models.Author) (models.Author, error) {
	a.ID = primitive.NewObjectID()
	a.Name = normalize.Name(a.Name)
	a.Email = normalize.Email(a.Email)

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Author{}, err
	}
	return a, nil
}

// GetByID loads an author by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Author, error) {
	var a models.Author
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByLead returns the authors owned by the given lead, newest first.
func (s *Store) ListByLead(ctx context.Context, leadID primitive.ObjectID) ([]models.Author, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{"lead_id": leadID}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Author
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByIDs returns the authors with the given ids, for reference population.
func (s *Store) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var out []models.Author
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AuthorUpdate holds the fields a lead can change on an author they own.
type AuthorUpdate struct {
	Name        string
	Email       string
	Affiliation string
}

// UpdateForLead updates an author only when it is owned by the given lead.
// A foreign author matches nothing, so the caller cannot tell someone else's
// record from a missing one. Returns the number of documents matched.
func (s *Store) UpdateForLead(ctx context.Context, id, leadID primitive.ObjectID, upd AuthorUpdate) (int64, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "lead_id": leadID},
		bson.M{"$set": bson.M{
			"name":        normalize.Name(upd.Name),
			"email":       normalize.Email(upd.Email),
			"affiliation": upd.Affiliation,
			"updated_at":  time.Now(),
		}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
