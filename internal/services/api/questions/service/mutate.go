package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"askforge/internal/adapters/appwrite"
	perr "askforge/internal/platform/errors"
	"askforge/internal/platform/logger"
	"askforge/internal/platform/net/http/bind"
	"askforge/internal/services/api/questions/domain"
)

// Create validates, uploads the attachment when present, then writes the
// document with its permission grants. The blob goes first so a failed upload
// leaves no partial state
func (s *Svc) Create(ctx context.Context, in domain.CreateInput) (domain.MutationResult, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if err := bind.Struct(in); err != nil {
		return domain.MutationResult{}, err
	}
	tags, err := parseTags(in.Tags)
	if err != nil {
		return domain.MutationResult{}, err
	}

	attachmentID, err := s.uploadAttachment(ctx, in.Attachment)
	if err != nil {
		return domain.MutationResult{}, err
	}

	data := map[string]any{
		"title":        in.Title,
		"content":      in.Content,
		"authorId":     in.AuthorID,
		"tags":         tags,
		"attachmentId": attachmentRef(attachmentID),
	}
	grants := []string{
		appwrite.PermissionRead(appwrite.RoleAny()),
		appwrite.PermissionUpdate(appwrite.RoleUser(in.AuthorID)),
		appwrite.PermissionDelete(appwrite.RoleUser(in.AuthorID)),
	}

	doc, err := s.Repo.CreateQuestion(ctx, uuid.NewString(), data, grants)
	if err != nil {
		return domain.MutationResult{}, err
	}
	logger.C(ctx).Info().Str("question_id", doc.ID).Msg("question created")
	return domain.MutationResult{Success: true, Question: questionFrom(doc)}, nil
}

// Update replaces the attachment when a new one arrives, then patches the
// document. Ownership is enforced by the grants set at create time and is not
// re-checked here
func (s *Svc) Update(ctx context.Context, in domain.UpdateInput) (domain.MutationResult, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if err := bind.Struct(in); err != nil {
		return domain.MutationResult{}, err
	}
	tags, err := parseTags(in.Tags)
	if err != nil {
		return domain.MutationResult{}, err
	}

	attachmentID := in.CurrentAttachmentID
	if in.Attachment != nil && len(in.Attachment.Data) > 0 {
		if in.CurrentAttachmentID != "" {
			// best effort, the update proceeds even when the old blob sticks around
			if err := s.Repo.DeleteAttachment(ctx, in.CurrentAttachmentID); err != nil {
				derr := perr.Wrap(err, perr.ErrorCodeAttachmentDelete, "failed to delete old attachment")
				logger.C(ctx).Warn().Err(derr).
					Str("attachment_id", in.CurrentAttachmentID).
					Msg("could not delete old attachment")
			}
		}
		attachmentID, err = s.uploadAttachment(ctx, in.Attachment)
		if err != nil {
			return domain.MutationResult{}, err
		}
	}

	doc, err := s.Repo.UpdateQuestion(ctx, in.QuestionID, map[string]any{
		"title":        in.Title,
		"content":      in.Content,
		"tags":         tags,
		"attachmentId": attachmentRef(attachmentID),
	})
	if err != nil {
		return domain.MutationResult{}, err
	}
	logger.C(ctx).Info().Str("question_id", doc.ID).Msg("question updated")
	return domain.MutationResult{Success: true, Question: questionFrom(doc)}, nil
}

// uploadAttachment writes the blob under a fresh id
// a failure aborts the enclosing mutation before any document write
func (s *Svc) uploadAttachment(ctx context.Context, a *domain.Attachment) (string, error) {
	if a == nil || len(a.Data) == 0 {
		return "", nil
	}
	id, err := s.Repo.UploadAttachment(ctx, uuid.NewString(), a.Filename, a.Data)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeAttachmentUpload, "failed to upload attachment")
	}
	return id, nil
}

// attachmentRef turns an empty id into an explicit null on the wire
func attachmentRef(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// parseTags decodes the serialized tag list carried by the form
func parseTags(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, perr.WithField(perr.Validationf("tags must be a JSON array of strings"), "tags")
	}
	return tags, nil
}
