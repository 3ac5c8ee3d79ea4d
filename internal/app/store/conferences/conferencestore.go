// Package conferencestore persists conference records. The admin surface sees
// every conference; leads only touch the ones they own, enforced by scoping
// the query filters rather than by post-hoc checks.
package conferencestore

import (
	"context"
	"errors"
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
	return &Store{c: db.Collection("conferences")}
}

var errBadStatus = errors.New(`status must be "submitted"|"accepted"|"presented"|"published"`)

// Create inserts a new conference owned by the given lead.
func (s *Store) Create(ctx context.Context, c models.Conference) (models.Conference, error) {
	c.ID = primitive.NewObjectID()
	c.Title = normalize.Name(c.Title)
	if c.Status == "" {
		c.Status = models.ConferenceSubmitted
	}
	if !models.IsValidConferenceStatus(c.Status) {
		return models.Conference{}, errBadStatus
	}

	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return models.Conference{}, err
	}
	return c, nil
}

// GetByID loads a conference by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Conference, error) {
	var c models.Conference
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all conferences, newest date first.
func (s *Store) List(ctx context.Context) ([]models.Conference, error) {
	return s.list(ctx, bson.M{})
}

// ListByLead returns the conferences owned by the given lead, newest date first.
func (s *Store) ListByLead(ctx context.Context, leadID primitive.ObjectID) ([]models.Conference, error) {
	return s.list(ctx, bson.M{"lead_id": leadID})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Conference, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Conference
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update holds the fields that can change on a conference.
type Update struct {
	Title          string
	Date           *time.Time
	Link           string
	Status         string
	AuthorIDs      []primitive.ObjectID
	ExtraAuthorIDs []primitive.ObjectID
}

func (upd Update) set() (bson.M, error) {
	if upd.Status != "" && !models.IsValidConferenceStatus(upd.Status) {
		return nil, errBadStatus
	}
	set := bson.M{
		"title":            normalize.Name(upd.Title),
		"link":             upd.Link,
		"author_ids":       upd.AuthorIDs,
		"extra_author_ids": upd.ExtraAuthorIDs,
		"updated_at":       time.Now(),
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Status != "" {
		set["status"] = upd.Status
	}
	return set, nil
}

// Update updates a conference without ownership scoping, for the admin
// surface. Returns the number of documents matched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (int64, error) {
	set, err := upd.set()
	if err != nil {
		return 0, err
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes a conference by id. Returns the number of documents deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
