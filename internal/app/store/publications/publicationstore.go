// Package publicationstore persists publications. Text fields pass through a
// strict HTML sanitizer on every write, so stored content is safe to render
// anywhere without further escaping.
package publicationstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/labhub/internal/app/system/normalize"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c        *mongo.Collection
	sanitize *bluemonday.Policy
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:        db.Collection("publications"),
		sanitize: bluemonday.StrictPolicy(),
	}
}

var errBadStatus = errors.New(`status must be "pending"|"approved"|"rejected"`)

func (s *Store) clean(p models.Publication) models.Publication {
	p.Meta = s.sanitize.Sanitize(p.Meta)
	p.Title = s.sanitize.Sanitize(normalize.Name(p.Title))
	p.Authors = s.sanitize.Sanitize(p.Authors)
	p.Description = s.sanitize.Sanitize(p.Description)
	p.Tag = s.sanitize.Sanitize(p.Tag)
	return p
}

// Create inserts a new publication. The caller decides the status; the store
// only validates it and fills defaults.
func (s *Store) Create(ctx context.Context, p models.Publication) (models.Publication, error) {
	p = s.clean(p)
	p.ID = primitive.NewObjectID()
	if p.Status == "" {
		p.Status = models.PublicationPending
	}
	if !models.IsValidPublicationStatus(p.Status) {
		return models.Publication{}, errBadStatus
	}
	if p.LinkLabel == "" {
		p.LinkLabel = models.DefaultLinkLabel
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Publication{}, err
	}
	return p, nil
}

// GetByID loads a publication by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Publication, error) {
	var p models.Publication
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListApproved returns approved publications, newest first. This backs the
// public listing and never exposes pending or rejected entries.
func (s *Store) ListApproved(ctx context.Context) ([]models.Publication, error) {
	return s.list(ctx, bson.M{"status": models.PublicationApproved})
}

// ListAll returns every publication regardless of status, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Publication, error) {
	return s.list(ctx, bson.M{})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Publication, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var out []models.Publication
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update holds the content fields that can change on a publication. Status
// changes go through UpdateStatus instead.
type Update struct {
	Meta        string
	Title       string
	Authors     string
	Description string
	Tag         string
	Link        string
	LinkLabel   string
}

// Update replaces a publication's content fields. Returns the number of
// documents matched.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) (int64, error) {
	linkLabel := upd.LinkLabel
	if linkLabel == "" {
		linkLabel = models.DefaultLinkLabel
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"meta":        s.sanitize.Sanitize(upd.Meta),
		"title":       s.sanitize.Sanitize(normalize.Name(upd.Title)),
		"authors":     s.sanitize.Sanitize(upd.Authors),
		"description": s.sanitize.Sanitize(upd.Description),
		"tag":         s.sanitize.Sanitize(upd.Tag),
		"link":        upd.Link,
		"link_label":  linkLabel,
		"updated_at":  time.Now(),
	}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// UpdateStatus moves a publication through the review workflow. Returns the
// number of documents matched.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	if !models.IsValidPublicationStatus(status) {
		return 0, errBadStatus
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// Delete removes a publication by id. Returns the number of documents deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
