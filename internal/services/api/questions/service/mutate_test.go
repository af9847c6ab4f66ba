package service_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	perr "askforge/internal/platform/errors"
	"askforge/internal/platform/testkit"
	"askforge/internal/services/api/questions/domain"
)

func validCreate() domain.CreateInput {
	return domain.CreateInput{
		Title:    "How do I reverse a string?",
		Content:  "I have a string and I want it backwards.",
		AuthorID: "u1",
		Tags:     `["python"]`,
	}
}

func TestCreate_ShortTitleRejectedBeforeIO(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	in := validCreate()
	in.Title = "Short"
	in.Attachment = &domain.Attachment{Filename: "a.png", Data: []byte{1, 2, 3}}

	_, err := svc.Create(context.Background(), in)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v, want Validation", perr.CodeOf(err))
	}
	if len(f.uploads) != 0 || len(f.created) != 0 {
		t.Fatalf("io happened despite validation failure: %d uploads, %d creates", len(f.uploads), len(f.created))
	}
}

func TestCreate_TrimsBeforeValidation(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	in := validCreate()
	in.Title = "   padded   " // 6 chars trimmed

	if _, err := svc.Create(context.Background(), in); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v, want Validation", perr.CodeOf(err))
	}
}

func TestCreate_NoAttachment(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	out, err := svc.Create(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !out.Success {
		t.Fatal("success = false")
	}
	if len(f.created) != 1 {
		t.Fatalf("creates = %d, want 1", len(f.created))
	}

	call := f.created[0]
	if call.data["attachmentId"] != nil {
		t.Fatalf("attachmentId = %v, want nil", call.data["attachmentId"])
	}
	if !reflect.DeepEqual(call.data["tags"], []string{"python"}) {
		t.Fatalf("tags = %v", call.data["tags"])
	}

	want := []string{`read("any")`, `update("user:u1")`, `delete("user:u1")`}
	if !reflect.DeepEqual(call.permissions, want) {
		t.Fatalf("permissions = %v, want %v", call.permissions, want)
	}

	if out.Question.AttachmentID != "" {
		t.Fatalf("question attachmentId = %q", out.Question.AttachmentID)
	}
	if !strings.HasPrefix(out.Question.URL, "/questions/"+call.id+"/") {
		t.Fatalf("url = %q", out.Question.URL)
	}
}

func TestCreate_MalformedTags(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	in := validCreate()
	in.Tags = "python,go"

	_, err := svc.Create(context.Background(), in)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v, want Validation", perr.CodeOf(err))
	}
	if e, ok := perr.As(err); !ok || e.Field() != "tags" {
		t.Fatalf("field = %v", err)
	}
}

func TestCreate_UploadFailureAborts(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{uploadErr: perr.Unavailablef("bucket down")}
	svc := newSvc(f)

	in := validCreate()
	in.Attachment = &domain.Attachment{Filename: "a.png", Data: []byte{1, 2, 3}}

	_, err := svc.Create(context.Background(), in)
	if !perr.IsCode(err, perr.ErrorCodeAttachmentUpload) {
		t.Fatalf("code = %v, want AttachmentUpload", perr.CodeOf(err))
	}
	testkit.MustContain(t, err.Error(), "failed to upload attachment")
	if len(f.created) != 0 {
		t.Fatalf("document written despite failed upload: %d", len(f.created))
	}
}

func TestCreate_WithAttachment(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	in := validCreate()
	in.Attachment = &domain.Attachment{Filename: "diagram.png", Data: []byte("png-bytes")}

	out, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(f.uploads) != 1 {
		t.Fatalf("uploads = %d, want 1", len(f.uploads))
	}
	up := f.uploads[0]
	if up.filename != "diagram.png" || up.size != len("png-bytes") || up.id == "" {
		t.Fatalf("upload = %+v", up)
	}
	if out.Question.AttachmentID != up.id {
		t.Fatalf("attachmentId = %q, want %q", out.Question.AttachmentID, up.id)
	}
}

func validUpdate() domain.UpdateInput {
	return domain.UpdateInput{
		QuestionID: "q1",
		Title:      "How do I reverse a string?",
		Content:    "I have a string and I want it backwards.",
		Tags:       `["go","strings"]`,
	}
}

func TestUpdate_RequiresQuestionID(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	in := validUpdate()
	in.QuestionID = ""

	if _, err := svc.Update(context.Background(), in); !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("code = %v, want Validation", perr.CodeOf(err))
	}
}

func TestUpdate_AttachmentPassthrough(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	in := validUpdate()
	in.CurrentAttachmentID = "blob-7"

	out, err := svc.Update(context.Background(), in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(f.uploads) != 0 || len(f.deletedBlobs) != 0 {
		t.Fatalf("blob io on passthrough: %d uploads, %d deletes", len(f.uploads), len(f.deletedBlobs))
	}
	if out.Question.AttachmentID != "blob-7" {
		t.Fatalf("attachmentId = %q, want blob-7", out.Question.AttachmentID)
	}
}

func TestUpdate_ReplacesAttachment(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	in := validUpdate()
	in.CurrentAttachmentID = "old-blob"
	in.Attachment = &domain.Attachment{Filename: "new.png", Data: []byte("fresh")}

	out, err := svc.Update(context.Background(), in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(f.deletedBlobs) != 1 || f.deletedBlobs[0] != "old-blob" {
		t.Fatalf("deletes = %v, want exactly [old-blob]", f.deletedBlobs)
	}
	if len(f.uploads) != 1 {
		t.Fatalf("uploads = %d, want exactly 1", len(f.uploads))
	}
	if out.Question.AttachmentID != f.uploads[0].id {
		t.Fatalf("attachmentId = %q, want %q", out.Question.AttachmentID, f.uploads[0].id)
	}
}

func TestUpdate_DeleteFailureProceeds(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{deleteBlobErr: perr.Unavailablef("blob store down")}
	svc := newSvc(f)

	in := validUpdate()
	in.CurrentAttachmentID = "old-blob"
	in.Attachment = &domain.Attachment{Filename: "new.png", Data: []byte("fresh")}

	out, err := svc.Update(context.Background(), in)
	if err != nil {
		t.Fatalf("delete failure must not abort the update: %v", err)
	}
	if len(f.uploads) != 1 || len(f.updated) != 1 {
		t.Fatalf("update skipped: %d uploads, %d updates", len(f.uploads), len(f.updated))
	}
	if out.Question.AttachmentID != f.uploads[0].id {
		t.Fatalf("attachmentId = %q", out.Question.AttachmentID)
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	in := validUpdate()
	in.CurrentAttachmentID = "blob-7"

	first, err := svc.Update(context.Background(), in)
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	second, err := svc.Update(context.Background(), in)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if !reflect.DeepEqual(first.Question, second.Question) {
		t.Fatalf("updates diverged:\n%+v\n%+v", first.Question, second.Question)
	}
	if !reflect.DeepEqual(f.updated[0].data, f.updated[1].data) {
		t.Fatalf("update payloads diverged:\n%v\n%v", f.updated[0].data, f.updated[1].data)
	}
}

func TestDelete_Passthrough(t *testing.T) {
	t.Parallel()

	f := &fakeRepo{}
	svc := newSvc(f)

	if err := svc.Delete(context.Background(), "q9"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(f.deletedDocs) != 1 || f.deletedDocs[0] != "q9" {
		t.Fatalf("deleted = %v", f.deletedDocs)
	}
}
