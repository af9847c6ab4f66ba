package http_test

import (
	"bytes"
	"context"
	"mime/multipart"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "askforge/internal/platform/net/http"
	"askforge/internal/services/api/questions/domain"
	questionshttp "askforge/internal/services/api/questions/http"
)

// fakeService records the inputs the transport hands it
type fakeService struct {
	feedIn   domain.FeedInput
	createIn domain.CreateInput
	updateIn domain.UpdateInput
	gotID    string

	createErr error
}

func (f *fakeService) Feed(_ context.Context, in domain.FeedInput) (domain.FeedPage, error) {
	f.feedIn = in
	return domain.FeedPage{Total: 1, Documents: []domain.EnrichedQuestion{}}, nil
}

func (f *fakeService) Get(_ context.Context, id string) (domain.Question, error) {
	f.gotID = id
	return domain.Question{ID: id}, nil
}

func (f *fakeService) Create(_ context.Context, in domain.CreateInput) (domain.MutationResult, error) {
	f.createIn = in
	if f.createErr != nil {
		return domain.MutationResult{}, f.createErr
	}
	return domain.MutationResult{Success: true, Question: domain.Question{ID: "q1"}}, nil
}

func (f *fakeService) Update(_ context.Context, in domain.UpdateInput) (domain.MutationResult, error) {
	f.updateIn = in
	return domain.MutationResult{Success: true, Question: domain.Question{ID: in.QuestionID}}, nil
}

func (f *fakeService) Delete(_ context.Context, id string) error {
	f.gotID = id
	return nil
}

func mount(f *fakeService) stdhttp.Handler {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	r.Route("/questions", func(rr phttp.Router) {
		questionshttp.Register(rr, f)
	})
	return r.Mux()
}

func TestFeed_QueryParams(t *testing.T) {
	t.Parallel()

	f := &fakeService{}
	h := mount(f)

	req := httptest.NewRequest(stdhttp.MethodGet, "/questions/?page=3&tag=go&search=reverse", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("code = %d body=%q", rr.Code, rr.Body.String())
	}
	want := domain.FeedInput{Page: 3, Tag: "go", Search: "reverse"}
	if f.feedIn != want {
		t.Fatalf("feed input = %+v, want %+v", f.feedIn, want)
	}
	if !strings.Contains(rr.Body.String(), `"total":1`) {
		t.Fatalf("body = %q", rr.Body.String())
	}
}

func TestCreate_MultipartBinding(t *testing.T) {
	t.Parallel()

	f := &fakeService{}
	h := mount(f)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("title", "How do I reverse a string?")
	_ = mw.WriteField("content", "I have a string and I want it backwards.")
	_ = mw.WriteField("authorId", "u1")
	_ = mw.WriteField("tags", `["go"]`)
	fw, _ := mw.CreateFormFile("attachment", "diagram.png")
	_, _ = fw.Write([]byte("png-bytes"))
	_ = mw.Close()

	req := httptest.NewRequest(stdhttp.MethodPost, "/questions/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != stdhttp.StatusCreated {
		t.Fatalf("code = %d body=%q", rr.Code, rr.Body.String())
	}
	if f.createIn.Title != "How do I reverse a string?" || f.createIn.AuthorID != "u1" {
		t.Fatalf("create input = %+v", f.createIn)
	}
	if f.createIn.Attachment == nil || string(f.createIn.Attachment.Data) != "png-bytes" {
		t.Fatalf("attachment = %+v", f.createIn.Attachment)
	}
	if f.createIn.Attachment.Filename != "diagram.png" {
		t.Fatalf("filename = %q", f.createIn.Attachment.Filename)
	}
}

func TestCreate_MissingAttachmentIsNil(t *testing.T) {
	t.Parallel()

	f := &fakeService{}
	h := mount(f)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("title", "How do I reverse a string?")
	_ = mw.WriteField("content", "I have a string and I want it backwards.")
	_ = mw.WriteField("authorId", "u1")
	_ = mw.Close()

	req := httptest.NewRequest(stdhttp.MethodPost, "/questions/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != stdhttp.StatusCreated {
		t.Fatalf("code = %d body=%q", rr.Code, rr.Body.String())
	}
	if f.createIn.Attachment != nil {
		t.Fatalf("attachment = %+v, want nil", f.createIn.Attachment)
	}
}

func TestCreate_NonMultipartRejected(t *testing.T) {
	t.Parallel()

	f := &fakeService{}
	h := mount(f)

	req := httptest.NewRequest(stdhttp.MethodPost, "/questions/", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != stdhttp.StatusBadRequest {
		t.Fatalf("code = %d, want 400", rr.Code)
	}
}

func TestUpdate_MultipartBinding(t *testing.T) {
	t.Parallel()

	f := &fakeService{}
	h := mount(f)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("questionId", "q1")
	_ = mw.WriteField("title", "How do I reverse a string?")
	_ = mw.WriteField("content", "I have a string and I want it backwards.")
	_ = mw.WriteField("currentAttachmentId", "blob-7")
	_ = mw.Close()

	req := httptest.NewRequest(stdhttp.MethodPut, "/questions/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("code = %d body=%q", rr.Code, rr.Body.String())
	}
	if f.updateIn.QuestionID != "q1" || f.updateIn.CurrentAttachmentID != "blob-7" {
		t.Fatalf("update input = %+v", f.updateIn)
	}
}

func TestGetAndDelete_PathParam(t *testing.T) {
	t.Parallel()

	f := &fakeService{}
	h := mount(f)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/questions/q42", nil))
	if rr.Code != stdhttp.StatusOK || f.gotID != "q42" {
		t.Fatalf("get: code=%d id=%q", rr.Code, f.gotID)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodDelete, "/questions/q42", nil))
	if rr.Code != stdhttp.StatusOK || !strings.Contains(rr.Body.String(), `"success":true`) {
		t.Fatalf("delete: code=%d body=%q", rr.Code, rr.Body.String())
	}
}
