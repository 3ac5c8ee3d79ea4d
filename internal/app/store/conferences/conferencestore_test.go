package conferencestore_test

import (
	"testing"
	"time"

	conferencestore "github.com/dalemusser/labhub/internal/app/store/conferences"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/dalemusser/labhub/internal/testutil"
)

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := conferencestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lead := fixtures.CreateLead(ctx, "Lead", "lead@example.edu")

	created, err := store.Create(ctx, models.Conference{
		Title:  "Intl. Conf. on Testing",
		LeadID: lead.ID,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != models.ConferenceSubmitted {
		t.Errorf("status = %q, want submitted default", created.Status)
	}
}

func TestStore_Create_RejectsBadStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := conferencestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lead := fixtures.CreateLead(ctx, "Lead", "lead@example.edu")

	_, err := store.Create(ctx, models.Conference{
		Title:  "Bad Status Conf",
		LeadID: lead.ID,
		Status: "maybe",
	})
	if err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestStore_ListByLead_Scoping(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := conferencestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	leadA := fixtures.CreateLead(ctx, "Lead A", "leada@example.edu")
	leadB := fixtures.CreateLead(ctx, "Lead B", "leadb@example.edu")
	fixtures.CreateConference(ctx, "Conf A", leadA.ID)
	fixtures.CreateConference(ctx, "Conf B", leadB.ID)

	forA, err := store.ListByLead(ctx, leadA.ID)
	if err != nil {
		t.Fatalf("ListByLead failed: %v", err)
	}
	if len(forA) != 1 || forA[0].Title != "Conf A" {
		t.Errorf("lead A listing wrong: %+v", forA)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin listing has %d conferences, want 2", len(all))
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := conferencestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lead := fixtures.CreateLead(ctx, "Lead", "lead@example.edu")
	conf := fixtures.CreateConference(ctx, "Original Title", lead.ID)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	upd := conferencestore.Update{
		Title:  "Updated Title",
		Date:   &date,
		Status: models.ConferenceAccepted,
	}

	matched, err := store.Update(ctx, conf.ID, upd)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if matched != 1 {
		t.Errorf("matched = %d, want 1", matched)
	}

	if _, err := store.Update(ctx, conf.ID, conferencestore.Update{Title: "x", Status: "maybe"}); err == nil {
		t.Error("expected error for invalid status")
	}

	stored, err := store.GetByID(ctx, conf.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.Status != models.ConferenceAccepted || stored.Title != "Updated Title" {
		t.Errorf("update not applied: %+v", stored)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := conferencestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	lead := fixtures.CreateLead(ctx, "Lead", "lead@example.edu")
	conf := fixtures.CreateConference(ctx, "Doomed Conf", lead.ID)

	deleted, err := store.Delete(ctx, conf.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}
