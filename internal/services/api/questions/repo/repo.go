// Package repo provides document store access for questions
package repo

import (
	"context"

	"askforge/internal/adapters/appwrite"
	"askforge/internal/modkit/storekit"
	"askforge/internal/platform/config"
)

// Repo defines the store contract for questions and their derived counters
type Repo interface {
	ListQuestions(ctx context.Context, queries []appwrite.Query) (appwrite.DocumentList, error)
	GetQuestion(ctx context.Context, id string) (appwrite.Document, error)
	CreateQuestion(ctx context.Context, id string, data map[string]any, permissions []string) (appwrite.Document, error)
	UpdateQuestion(ctx context.Context, id string, data map[string]any) (appwrite.Document, error)
	DeleteQuestion(ctx context.Context, id string) error

	CountAnswers(ctx context.Context, questionID string) (int, error)
	CountVotes(ctx context.Context, questionID string) (int, error)
	Author(ctx context.Context, id string) (appwrite.User, error)

	UploadAttachment(ctx context.Context, id, filename string, data []byte) (string, error)
	DeleteAttachment(ctx context.Context, id string) error
}

// Names holds the database, collection, and bucket ids questions live in
type Names struct {
	Database    string
	Questions   string
	Answers     string
	Votes       string
	Attachments string
}

// NamesFromConfig reads collection names from an APPWRITE_-scoped config view
func NamesFromConfig(cfg config.Conf) Names {
	return Names{
		Database:    cfg.MustString("DATABASE_ID"),
		Questions:   cfg.MayString("QUESTIONS_COLLECTION_ID", "questions"),
		Answers:     cfg.MayString("ANSWERS_COLLECTION_ID", "answers"),
		Votes:       cfg.MayString("VOTES_COLLECTION_ID", "votes"),
		Attachments: cfg.MayString("ATTACHMENTS_BUCKET_ID", "question-attachments"),
	}
}

type (
	// Store implements the Repo interface against the document backend
	Store struct{ names Names }

	// queries holds the bound client methods
	queries struct {
		c     storekit.Client
		names Names
	}
)

// NewStore creates a document store repository binder
func NewStore(names Names) storekit.Binder[Repo] { return Store{names: names} }

// Bind binds a store client to the Repo implementation
func (s Store) Bind(c storekit.Client) Repo { return &queries{c: c, names: s.names} }

func (r *queries) ListQuestions(ctx context.Context, qs []appwrite.Query) (appwrite.DocumentList, error) {
	return r.c.Databases().ListDocuments(ctx, r.names.Database, r.names.Questions, qs)
}

func (r *queries) GetQuestion(ctx context.Context, id string) (appwrite.Document, error) {
	return r.c.Databases().GetDocument(ctx, r.names.Database, r.names.Questions, id)
}

func (r *queries) CreateQuestion(
	ctx context.Context, id string, data map[string]any, permissions []string,
) (appwrite.Document, error) {
	return r.c.Databases().CreateDocument(ctx, r.names.Database, r.names.Questions, id, data, permissions)
}

func (r *queries) UpdateQuestion(ctx context.Context, id string, data map[string]any) (appwrite.Document, error) {
	return r.c.Databases().UpdateDocument(ctx, r.names.Database, r.names.Questions, id, data)
}

func (r *queries) DeleteQuestion(ctx context.Context, id string) error {
	return r.c.Databases().DeleteDocument(ctx, r.names.Database, r.names.Questions, id)
}

// CountAnswers asks for at most one row and reads the list total
// the store reports the full matching count independent of the limit
func (r *queries) CountAnswers(ctx context.Context, questionID string) (int, error) {
	list, err := r.c.Databases().ListDocuments(ctx, r.names.Database, r.names.Answers, []appwrite.Query{
		appwrite.Equal("questionId", questionID),
		appwrite.Limit(1),
	})
	if err != nil {
		return 0, err
	}
	return list.Total, nil
}

// CountVotes counts question votes the same way as CountAnswers
func (r *queries) CountVotes(ctx context.Context, questionID string) (int, error) {
	list, err := r.c.Databases().ListDocuments(ctx, r.names.Database, r.names.Votes, []appwrite.Query{
		appwrite.Equal("type", "question"),
		appwrite.Equal("typeId", questionID),
		appwrite.Limit(1),
	})
	if err != nil {
		return 0, err
	}
	return list.Total, nil
}

func (r *queries) Author(ctx context.Context, id string) (appwrite.User, error) {
	return r.c.Users().Get(ctx, id)
}

func (r *queries) UploadAttachment(ctx context.Context, id, filename string, data []byte) (string, error) {
	return r.c.Storage().CreateFile(ctx, r.names.Attachments, id, filename, data)
}

func (r *queries) DeleteAttachment(ctx context.Context, id string) error {
	return r.c.Storage().DeleteFile(ctx, r.names.Attachments, id)
}
