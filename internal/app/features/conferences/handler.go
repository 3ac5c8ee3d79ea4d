// internal/app/features/conferences/handler.go

// Package conferences owns conference management for both surfaces. Admins
// see and mutate everything; leads only their own records. The update path is
// shared and defers the ownership decision to conferencepolicy, while lead
// listings are scoped at the query.
package conferences

import (
	"context"
	"time"

	authorstore "github.com/dalemusser/labhub/internal/app/store/authors"
	conferencestore "github.com/dalemusser/labhub/internal/app/store/conferences"
	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler owns the conference endpoints for the admin and lead surfaces.
type Handler struct {
	Conferences *conferencestore.Store
	Users       *userstore.Store
	Authors     *authorstore.Store
	Log         *zap.Logger
}

// NewHandler constructs a conferences Handler.
func NewHandler(conferences *conferencestore.Store, users *userstore.Store, authors *authorstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Conferences: conferences, Users: users, Authors: authors, Log: logger}
}

// conferenceView is a conference with its references populated.
type conferenceView struct {
	models.Conference
	Lead         *models.UserRef    `json:"lead,omitempty"`
	Authors      []models.UserRef   `json:"authors"`
	ExtraAuthors []models.AuthorRef `json:"extra_authors"`
}

// conferenceRequest is the write shape shared by create and update. The date
// is RFC 3339; lead_id is only honored on the admin surface.
type conferenceRequest struct {
	Title          string     `json:"title"`
	Date           *time.Time `json:"date"`
	Link           string     `json:"link"`
	Status         string     `json:"status"`
	LeadID         string     `json:"lead_id"`
	AuthorIDs      []string   `json:"author_ids"`
	ExtraAuthorIDs []string   `json:"extra_author_ids"`
}

func parseIDList(raw []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(raw))
	for _, s := range raw {
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// populate resolves the user and external-author references for a batch of
// conferences with one query per collection.
func (h *Handler) populate(ctx context.Context, confs []models.Conference) ([]conferenceView, error) {
	var userIDs, authorIDs []primitive.ObjectID
	seenUsers := map[primitive.ObjectID]bool{}
	for i := range confs {
		if !seenUsers[confs[i].LeadID] {
			seenUsers[confs[i].LeadID] = true
			userIDs = append(userIDs, confs[i].LeadID)
		}
		for _, id := range confs[i].AuthorIDs {
			if !seenUsers[id] {
				seenUsers[id] = true
				userIDs = append(userIDs, id)
			}
		}
		authorIDs = append(authorIDs, confs[i].ExtraAuthorIDs...)
	}

	users, err := h.Users.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	authors, err := h.Authors.ListByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	userRefs := make(map[primitive.ObjectID]models.UserRef, len(users))
	for i := range users {
		userRefs[users[i].ID] = users[i].Ref()
	}
	authorRefs := make(map[primitive.ObjectID]models.AuthorRef, len(authors))
	for i := range authors {
		authorRefs[authors[i].ID] = authors[i].Ref()
	}

	views := make([]conferenceView, 0, len(confs))
	for i := range confs {
		v := conferenceView{
			Conference:   confs[i],
			Authors:      []models.UserRef{},
			ExtraAuthors: []models.AuthorRef{},
		}
		if ref, ok := userRefs[confs[i].LeadID]; ok {
			v.Lead = &ref
		}
		for _, id := range confs[i].AuthorIDs {
			if ref, ok := userRefs[id]; ok {
				v.Authors = append(v.Authors, ref)
			}
		}
		for _, id := range confs[i].ExtraAuthorIDs {
			if ref, ok := authorRefs[id]; ok {
				v.ExtraAuthors = append(v.ExtraAuthors, ref)
			}
		}
		views = append(views, v)
	}
	return views, nil
}
