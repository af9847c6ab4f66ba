package bind

import (
	"io"
	"net/http"

	perr "askforge/internal/platform/errors"
)

// multipart form memory budget before spilling to disk
const defaultFormMemory = 10 << 20

// FilePart is an uploaded file read fully into memory
type FilePart struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Form is a thin view over a parsed multipart request
type Form struct{ r *http.Request }

// Multipart parses the request as multipart/form-data and returns a Form view
func Multipart(r *http.Request) (Form, error) {
	if err := r.ParseMultipartForm(defaultFormMemory); err != nil {
		return Form{}, perr.Validationf("invalid multipart form: %v", err)
	}
	return Form{r: r}, nil
}

// String returns the named form field, untrimmed; missing fields return ""
func (f Form) String(key string) string {
	return f.r.FormValue(key)
}

// File returns the named file part fully read, or (nil, nil) when the part
// is absent or empty; an empty upload is treated the same as no upload
func (f Form) File(key string) (*FilePart, error) {
	file, hdr, err := f.r.FormFile(key)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, perr.Validationf("invalid file field %q: %v", key, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, perr.Validationf("reading file field %q: %v", key, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return &FilePart{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
