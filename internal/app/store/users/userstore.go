package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/labhub/internal/app/system/identity"
	"github.com/dalemusser/labhub/internal/app/system/normalize"
	"github.com/dalemusser/labhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// The identity reconciler depends on this store through its own interface.
var _ identity.UserStore = (*Store)(nil)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "member"|"lead"|"advisor"|"director"|"admin"`)
)

// GetByID loads a user by ObjectID. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetLeadByID loads a user by ObjectID, returning an error if the user
// does not exist or is not a lead role.
func (s *Store) GetLeadByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id, "role": models.RoleLead}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByUID looks up a user by provider uid. Returns (nil, nil) when no user
// has the uid, matching what the identity reconciler expects.
func (s *Store) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"uid": uid}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByEmail looks up a user by case-insensitive email. Returns (nil, nil)
// when no user has the email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing & validating fields.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.DisplayName = normalize.Name(u.DisplayName)
	u.Email = normalize.Email(u.Email)
	if u.Role == "" {
		u.Role = models.RoleMember
	}
	if !models.IsValidRole(u.Role) {
		return models.User{}, errBadRole
	}

	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// CreateManual inserts an account provisioned by staff before the person has
// ever signed in. The placeholder uid keeps the sparse unique index happy and
// is replaced on the person's first real login.
func (s *Store) CreateManual(ctx context.Context, u models.User) (models.User, error) {
	u.UID = "manual-" + uuid.NewString()
	return s.Create(ctx, u)
}

// Sync applies the linkage fields an identity reconciliation pass decided to
// change. The in-memory user is updated to match so the caller sees the
// post-sync state.
func (s *Store) Sync(ctx context.Context, u *models.User, upd identity.SyncFields) error {
	set := bson.M{"updated_at": time.Now()}
	if upd.UID != "" {
		set["uid"] = upd.UID
	}
	if upd.Role != "" {
		set["role"] = upd.Role
	}
	if upd.DisplayName != "" {
		set["display_name"] = upd.DisplayName
	}

	if _, err := s.c.UpdateOne(ctx, bson.M{"_id": u.ID}, bson.M{"$set": set}); err != nil {
		return err
	}

	if upd.UID != "" {
		u.UID = upd.UID
	}
	if upd.Role != "" {
		u.Role = upd.Role
	}
	if upd.DisplayName != "" {
		u.DisplayName = upd.DisplayName
	}
	return nil
}

// UpdateRole sets the role of the given user. Returns the number of documents
// matched (0 when the user does not exist).
func (s *Store) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error) {
	if !models.IsValidRole(role) {
		return 0, errBadRole
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role, "updated_at": time.Now()}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// List returns all users sorted by email.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "email", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLeads returns all users with the lead role, sorted by display name.
func (s *Store) ListLeads(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"role": models.RoleLead}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByLead returns the members assigned to the given lead.
func (s *Store) ListByLead(ctx context.Context, leadID primitive.ObjectID) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"lead_id": leadID}, opts)
	if err != nil {
		return nil, err
	}
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByIDs returns the users with the given ids, for reference population.
func (s *Store) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var out []models.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignLead sets (or clears, with nil) the lead a member belongs to.
// Returns the number of documents matched.
func (s *Store) AssignLead(ctx context.Context, memberID primitive.ObjectID, leadID *primitive.ObjectID) (int64, error) {
	var update bson.M
	if leadID == nil {
		update = bson.M{
			"$unset": bson.M{"lead_id": ""},
			"$set":   bson.M{"updated_at": time.Now()},
		}
	} else {
		update = bson.M{"$set": bson.M{"lead_id": *leadID, "updated_at": time.Now()}}
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": memberID}, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// MemberUpdate holds the profile fields that can be updated on a member.
type MemberUpdate struct {
	DisplayName  string
	Mobile       string
	StudentID    string
	StudentEmail string
}

func (upd MemberUpdate) set() bson.M {
	return bson.M{
		"display_name":  normalize.Name(upd.DisplayName),
		"mobile":        upd.Mobile,
		"student_id":    upd.StudentID,
		"student_email": normalize.Email(upd.StudentEmail),
		"updated_at":    time.Now(),
	}
}

// UpdateMember updates a member's profile fields without ownership scoping,
// for the admin surface. Returns the number of documents matched.
func (s *Store) UpdateMember(ctx context.Context, id primitive.ObjectID, upd MemberUpdate) (int64, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "role": models.RoleMember},
		bson.M{"$set": upd.set()})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// UpdateMemberForLead updates a member's profile fields only when the member
// belongs to the given lead. A non-member or someone else's member simply
// does not match, so the caller cannot tell a foreign record from a missing
// one. Returns the number of documents matched.
func (s *Store) UpdateMemberForLead(ctx context.Context, memberID, leadID primitive.ObjectID, upd MemberUpdate) (int64, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": memberID, "lead_id": leadID, "role": models.RoleMember},
		bson.M{"$set": upd.set()})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
