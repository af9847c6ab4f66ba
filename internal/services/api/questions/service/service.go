// Package service contains question feed and mutation workflows
package service

import (
	"context"

	"askforge/internal/adapters/appwrite"
	"askforge/internal/core/slug"
	perr "askforge/internal/platform/errors"
	"askforge/internal/modkit/storekit"
	"askforge/internal/services/api/questions/domain"
	"askforge/internal/services/api/questions/repo"
)

// Service defines the service contract for questions
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder storekit.Binder[repo.Repo]
	store  storekit.Client
}

// New creates a new questions service
func New(store storekit.Client, binder storekit.Binder[repo.Repo]) *Svc {
	if binder == nil {
		panic("questions.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: storekit.MustBind(binder, store), binder: binder, store: store}
}

// Get fetches a single question by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Question, error) {
	if id == "" {
		return domain.Question{}, perr.WithField(perr.Validationf("question id is required"), "id")
	}
	doc, err := s.Repo.GetQuestion(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	return questionFrom(doc), nil
}

// Delete removes a question document. Ownership is enforced by the store's
// permission layer, attachment blobs are not reclaimed here
func (s *Svc) Delete(ctx context.Context, id string) error {
	if id == "" {
		return perr.WithField(perr.Validationf("question id is required"), "id")
	}
	return s.Repo.DeleteQuestion(ctx, id)
}

// questionFrom maps a stored document to the wire question shape
func questionFrom(d appwrite.Document) domain.Question {
	q := domain.Question{
		ID:           d.ID,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		Title:        d.String("title"),
		Content:      d.String("content"),
		AuthorID:     d.String("authorId"),
		Tags:         d.Strings("tags"),
		AttachmentID: d.String("attachmentId"),
	}
	q.URL = "/questions/" + q.ID + "/" + slug.Make(q.Title)
	return q
}
