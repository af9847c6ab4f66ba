package appwrite

import (
	"context"
	"fmt"
	"net/http"
)

// Storage is the binary file surface, keyed by bucket + file id
type Storage struct{ c *Client }

// file is the subset of the upload response we consume
type file struct {
	ID string `json:"$id"`
}

// CreateFile uploads data under the given id and returns the stored file id
func (s *Storage) CreateFile(ctx context.Context, bucket, id, filename string, data []byte) (string, error) {
	var out file
	err := s.c.doMultipart(
		ctx,
		fmt.Sprintf("/storage/buckets/%s/files", bucket),
		map[string]string{"fileId": id},
		"file", filename, data,
		&out,
	)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

// DeleteFile removes a file by id. Callers decide whether a failure is fatal
func (s *Storage) DeleteFile(ctx context.Context, bucket, id string) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/storage/buckets/%s/files/%s", bucket, id), nil, nil, nil)
}
