package appwrite

import (
	"context"
	"fmt"
	"net/http"
)

// Databases is the document query and mutation surface
type Databases struct{ c *Client }

func collectionPath(db, collection string) string {
	return fmt.Sprintf("/databases/%s/collections/%s/documents", db, collection)
}

// ListDocuments runs the given queries against a collection and returns a page
// plus the total count of matching documents
func (d *Databases) ListDocuments(ctx context.Context, db, collection string, queries []Query) (DocumentList, error) {
	var out DocumentList
	err := d.c.do(ctx, http.MethodGet, collectionPath(db, collection), encodeQueries(queries), nil, &out)
	return out, err
}

// GetDocument fetches a single document by id
func (d *Databases) GetDocument(ctx context.Context, db, collection, id string) (Document, error) {
	var out Document
	err := d.c.do(ctx, http.MethodGet, collectionPath(db, collection)+"/"+id, nil, nil, &out)
	return out, err
}

// CreateDocument creates a document with explicit data and permission grants
func (d *Databases) CreateDocument(
	ctx context.Context, db, collection, id string, data map[string]any, permissions []string,
) (Document, error) {
	body := map[string]any{
		"documentId": id,
		"data":       data,
	}
	if len(permissions) > 0 {
		body["permissions"] = permissions
	}
	var out Document
	err := d.c.do(ctx, http.MethodPost, collectionPath(db, collection), nil, body, &out)
	return out, err
}

// UpdateDocument patches a document's data attributes
func (d *Databases) UpdateDocument(ctx context.Context, db, collection, id string, data map[string]any) (Document, error) {
	var out Document
	err := d.c.do(ctx, http.MethodPatch, collectionPath(db, collection)+"/"+id, nil, map[string]any{"data": data}, &out)
	return out, err
}

// DeleteDocument removes a document by id
func (d *Databases) DeleteDocument(ctx context.Context, db, collection, id string) error {
	return d.c.do(ctx, http.MethodDelete, collectionPath(db, collection)+"/"+id, nil, nil, nil)
}
