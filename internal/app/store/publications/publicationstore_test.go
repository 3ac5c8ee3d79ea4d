package publicationstore_test

import (
	"strings"
	"testing"

	publicationstore "github.com/dalemusser/labhub/internal/app/store/publications"
	"github.com/dalemusser/labhub/internal/domain/models"
	"github.com/dalemusser/labhub/internal/testutil"
)

func TestStore_Create_SanitizesText(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := publicationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Publication{
		Title:       `Result <script>alert("x")</script> Summary`,
		Authors:     "A. Author",
		Description: "<b>bold claims</b>",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if strings.Contains(created.Title, "<script>") {
		t.Errorf("script tag survived sanitization: %q", created.Title)
	}
	if strings.Contains(created.Description, "<b>") {
		t.Errorf("markup survived sanitization: %q", created.Description)
	}
	if created.Status != models.PublicationPending {
		t.Errorf("status = %q, want pending default", created.Status)
	}
	if created.LinkLabel != models.DefaultLinkLabel {
		t.Errorf("link label = %q, want default", created.LinkLabel)
	}
}

func TestStore_ListApproved_HidesPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := publicationstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreatePublication(ctx, "Approved One", models.PublicationApproved)
	fixtures.CreatePublication(ctx, "Pending One", models.PublicationPending)
	fixtures.CreatePublication(ctx, "Rejected One", models.PublicationRejected)

	approved, err := store.ListApproved(ctx)
	if err != nil {
		t.Fatalf("ListApproved failed: %v", err)
	}
	if len(approved) != 1 || approved[0].Title != "Approved One" {
		t.Errorf("ListApproved returned %+v", approved)
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListAll returned %d publications, want 3", len(all))
	}
}

func TestStore_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := publicationstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pub := fixtures.CreatePublication(ctx, "Under Review", models.PublicationPending)

	if _, err := store.UpdateStatus(ctx, pub.ID, "maybe"); err == nil {
		t.Error("expected error for invalid status")
	}

	matched, err := store.UpdateStatus(ctx, pub.ID, models.PublicationApproved)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if matched != 1 {
		t.Errorf("matched = %d, want 1", matched)
	}

	stored, err := store.GetByID(ctx, pub.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.Status != models.PublicationApproved {
		t.Errorf("status = %q, want approved", stored.Status)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := publicationstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pub := fixtures.CreatePublication(ctx, "Doomed", models.PublicationPending)

	deleted, err := store.Delete(ctx, pub.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}
