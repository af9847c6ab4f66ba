package service_test

import (
	"context"
	"errors"
	"sync"

	"askforge/internal/adapters/appwrite"
	"askforge/internal/modkit/storekit"
	"askforge/internal/services/api/questions/repo"
	"askforge/internal/services/api/questions/service"
)

type createCall struct {
	id          string
	data        map[string]any
	permissions []string
}

type updateCall struct {
	id   string
	data map[string]any
}

type uploadCall struct {
	id       string
	filename string
	size     int
}

// fakeRepo records every call; enrichment runs concurrently so a mutex guards it
type fakeRepo struct {
	mu sync.Mutex

	listCalls [][]appwrite.Query
	failPlans int // fail the first n ListQuestions calls
	list      appwrite.DocumentList

	authors      map[string]appwrite.User
	authorErr    error
	answerTotals map[string]int
	voteTotals   map[string]int
	countErr     error

	created   []createCall
	updated   []updateCall
	uploads   []uploadCall
	uploadErr error

	deletedBlobs  []string
	deleteBlobErr error
	deletedDocs   []string

	getDoc appwrite.Document
	getErr error
}

func (f *fakeRepo) ListQuestions(_ context.Context, qs []appwrite.Query) (appwrite.DocumentList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, qs)
	if len(f.listCalls) <= f.failPlans {
		return appwrite.DocumentList{}, errors.New("fulltext index not found")
	}
	return f.list, nil
}

func (f *fakeRepo) GetQuestion(context.Context, string) (appwrite.Document, error) {
	return f.getDoc, f.getErr
}

func (f *fakeRepo) CreateQuestion(
	_ context.Context, id string, data map[string]any, permissions []string,
) (appwrite.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, createCall{id: id, data: data, permissions: permissions})
	return docFromData(id, data, permissions), nil
}

func (f *fakeRepo) UpdateQuestion(_ context.Context, id string, data map[string]any) (appwrite.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, updateCall{id: id, data: data})
	return docFromData(id, data, nil), nil
}

func (f *fakeRepo) DeleteQuestion(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedDocs = append(f.deletedDocs, id)
	return nil
}

func (f *fakeRepo) CountAnswers(_ context.Context, questionID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.answerTotals[questionID], nil
}

func (f *fakeRepo) CountVotes(_ context.Context, questionID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.voteTotals[questionID], nil
}

func (f *fakeRepo) Author(_ context.Context, id string) (appwrite.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.authorErr != nil {
		return appwrite.User{}, f.authorErr
	}
	return f.authors[id], nil
}

func (f *fakeRepo) UploadAttachment(_ context.Context, id, filename string, data []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, uploadCall{id: id, filename: filename, size: len(data)})
	return id, nil
}

func (f *fakeRepo) DeleteAttachment(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteBlobErr != nil {
		return f.deleteBlobErr
	}
	f.deletedBlobs = append(f.deletedBlobs, id)
	return nil
}

// docFromData echoes a mutation back as a stored document
func docFromData(id string, data map[string]any, permissions []string) appwrite.Document {
	d := appwrite.Document{
		ID:          id,
		CreatedAt:   "2026-08-01T00:00:00Z",
		UpdatedAt:   "2026-08-01T00:00:00Z",
		Permissions: permissions,
		Data:        map[string]any{},
	}
	for k, v := range data {
		if tags, ok := v.([]string); ok {
			// stored documents round-trip through JSON
			anyTags := make([]any, len(tags))
			for i, t := range tags {
				anyTags[i] = t
			}
			d.Data[k] = anyTags
			continue
		}
		d.Data[k] = v
	}
	return d
}

func newSvc(f *fakeRepo) *service.Svc {
	client := appwrite.NewClient(appwrite.Options{Endpoint: "http://127.0.0.1:0", Project: "p", Key: "k"})
	return service.New(client, storekit.BindFunc[repo.Repo](func(storekit.Client) repo.Repo { return f }))
}
