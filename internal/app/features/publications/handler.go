// internal/app/features/publications/handler.go

// Package publications owns the publication listing and review workflow:
// the public approved-only listing, the admin review surface, and the
// submission endpoint open to every signed-in account.
package publications

import (
	publicationstore "github.com/dalemusser/labhub/internal/app/store/publications"
	userstore "github.com/dalemusser/labhub/internal/app/store/users"
	"github.com/dalemusser/labhub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler owns the publication endpoints.
type Handler struct {
	Pubs  *publicationstore.Store
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a publications Handler.
func NewHandler(pubs *publicationstore.Store, users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Pubs: pubs, Users: users, Log: logger}
}

// publicationView is a publication with its creator populated, used on the
// admin surface. The public listing returns the bare model.
type publicationView struct {
	models.Publication
	CreatedBy *models.UserRef `json:"created_by,omitempty"`
}

// publicationRequest is the write shape shared by submit, create, and edit.
type publicationRequest struct {
	Meta        string `json:"meta"`
	Title       string `json:"title"`
	Authors     string `json:"authors"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
	Link        string `json:"link"`
	LinkLabel   string `json:"link_label"`
}

func (req publicationRequest) complete() bool {
	return req.Meta != "" && req.Title != "" && req.Authors != "" &&
		req.Description != "" && req.Tag != "" && req.Link != ""
}
