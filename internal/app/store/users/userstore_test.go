package userstore_test

import (
	"strings"
	"testing"

	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/app/system/identity"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/dalemusser/labhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		DisplayName: "  Grad Student ",
		Email:       "Grad@Example.EDU",
		UID:         "uid-1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Email != "grad@example.edu" {
		t.Errorf("email not normalized: %q", created.Email)
	}
	if created.DisplayName != "Grad Student" {
		t.Errorf("display name not trimmed: %q", created.DisplayName)
	}
	if created.Role != models.RoleMember {
		t.Errorf("expected default role member, got %q", created.Role)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_RejectsBadRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{Email: "x@example.edu", Role: "superuser"})
	if err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestStore_CreateManual(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.CreateManual(ctx, models.User{
		DisplayName: "Future Member",
		Email:       "future@example.edu",
	})
	if err != nil {
		t.Fatalf("CreateManual failed: %v", err)
	}
	if !strings.HasPrefix(created.UID, "manual-") {
		t.Errorf("expected placeholder uid, got %q", created.UID)
	}
}

func TestStore_FindByUIDAndEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{Email: "find@example.edu", UID: "uid-find"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	byUID, err := store.FindByUID(ctx, "uid-find")
	if err != nil {
		t.Fatalf("FindByUID failed: %v", err)
	}
	if byUID == nil || byUID.ID != created.ID {
		t.Error("FindByUID did not return the created user")
	}

	byEmail, err := store.FindByEmail(ctx, "FIND@example.edu")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if byEmail == nil || byEmail.ID != created.ID {
		t.Error("FindByEmail did not return the created user")
	}

	missing, err := store.FindByUID(ctx, "uid-nobody")
	if err != nil {
		t.Fatalf("FindByUID (miss) failed: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown uid")
	}
}

func TestStore_Sync(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{Email: "sync@example.edu"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	u := created
	if err := store.Sync(ctx, &u, identity.SyncFields{UID: "uid-synced", DisplayName: "Synced Name"}); err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if u.UID != "uid-synced" || u.DisplayName != "Synced Name" {
		t.Error("in-memory user not updated by Sync")
	}

	stored, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.UID != "uid-synced" || stored.DisplayName != "Synced Name" {
		t.Error("stored user not updated by Sync")
	}
}

func TestStore_UpdateRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{Email: "promote@example.edu"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	matched, err := store.UpdateRole(ctx, created.ID, models.RoleLead)
	if err != nil {
		t.Fatalf("UpdateRole failed: %v", err)
	}
	if matched != 1 {
		t.Errorf("matched = %d, want 1", matched)
	}

	if _, err := store.UpdateRole(ctx, created.ID, "superuser"); err == nil {
		t.Error("expected error for invalid role")
	}

	matched, err = store.UpdateRole(ctx, primitive.NewObjectID(), models.RoleLead)
	if err != nil {
		t.Fatalf("UpdateRole (miss) failed: %v", err)
	}
	if matched != 0 {
		t.Errorf("matched = %d for unknown id, want 0", matched)
	}
}

func TestStore_AssignLead(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lead := fixtures.CreateLead(ctx, "Lead One", "lead1@example.edu")
	member := fixtures.CreateUser(ctx, "Member", "m@example.edu", models.RoleMember, nil)

	matched, err := store.AssignLead(ctx, member.ID, &lead.ID)
	if err != nil {
		t.Fatalf("AssignLead failed: %v", err)
	}
	if matched != 1 {
		t.Errorf("matched = %d, want 1", matched)
	}

	members, err := store.ListByLead(ctx, lead.ID)
	if err != nil {
		t.Fatalf("ListByLead failed: %v", err)
	}
	if len(members) != 1 || members[0].ID != member.ID {
		t.Errorf("ListByLead returned %d members", len(members))
	}

	// Clearing the assignment removes the member from the team.
	if _, err := store.AssignLead(ctx, member.ID, nil); err != nil {
		t.Fatalf("AssignLead (clear) failed: %v", err)
	}
	members, err = store.ListByLead(ctx, lead.ID)
	if err != nil {
		t.Fatalf("ListByLead failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("expected empty team after clearing, got %d", len(members))
	}
}

func TestStore_UpdateMemberForLead_Scoping(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	leadA := fixtures.CreateLead(ctx, "Lead A", "leada@example.edu")
	leadB := fixtures.CreateLead(ctx, "Lead B", "leadb@example.edu")
	member := fixtures.CreateMember(ctx, "Member", "member@example.edu", leadA.ID)

	upd := userstore.MemberUpdate{DisplayName: "Renamed", StudentID: "s123"}

	// The owning lead can update.
	matched, err := store.UpdateMemberForLead(ctx, member.ID, leadA.ID, upd)
	if err != nil {
		t.Fatalf("UpdateMemberForLead failed: %v", err)
	}
	if matched != 1 {
		t.Errorf("matched = %d, want 1", matched)
	}

	// Another lead's update matches nothing, indistinguishable from a
	// missing record.
	matched, err = store.UpdateMemberForLead(ctx, member.ID, leadB.ID, upd)
	if err != nil {
		t.Fatalf("UpdateMemberForLead (foreign) failed: %v", err)
	}
	if matched != 0 {
		t.Errorf("matched = %d for foreign lead, want 0", matched)
	}
}
