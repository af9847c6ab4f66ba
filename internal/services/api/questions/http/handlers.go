// Package http provides http transport for questions
package http

import (
	stdhttp "net/http"
	"strconv"

	"askforge/internal/modkit/httpkit"
	"askforge/internal/platform/net/http/bind"
	"askforge/internal/services/api/questions/domain"
	svc "askforge/internal/services/api/questions/service"
)

// Register mounts question endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.feed)
	httpkit.Get(r, "/{id}", h.get)
	r.Post("/", httpkit.Handle(h.create))
	r.Put("/", httpkit.Handle(h.update))
	httpkit.Delete(r, "/{id}", h.remove)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /questions Questions questionsFeed
// @Summary Paginated question feed with optional tag and search filters
// @Tags Questions
// @Produce json
// @Param page query int false "Page number, 1-based"
// @Param tag query string false "Tag filter"
// @Param search query string false "Search term"
// @Success 200 {object} domain.FeedPage "ok"
// @Router /questions [get]
func (h *handlers) feed(r *stdhttp.Request) (any, error) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	return h.svc.Feed(r.Context(), domain.FeedInput{
		Page:   page,
		Tag:    r.URL.Query().Get("tag"),
		Search: r.URL.Query().Get("search"),
	})
}

// swagger:route GET /questions/{id} Questions questionsGet
// @Summary Fetch one question by id
// @Tags Questions
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {object} domain.Question "ok"
// @Router /questions/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

// swagger:route POST /questions Questions questionsCreate
// @Summary Create a question from a multipart form with optional attachment
// @Tags Questions
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title, min 10 chars"
// @Param content formData string true "Content, min 20 chars"
// @Param authorId formData string true "Author id"
// @Param tags formData string false "JSON array of tags"
// @Param attachment formData file false "Optional attachment"
// @Success 201 {object} domain.MutationResult "created"
// @Router /questions [post]
func (h *handlers) create(r *stdhttp.Request) httpkit.Response {
	in, err := bindCreate(r)
	if err != nil {
		return httpkit.Error(err)
	}
	out, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Created(out)
}

// swagger:route PUT /questions Questions questionsUpdate
// @Summary Update a question from a multipart form, optionally replacing the attachment
// @Tags Questions
// @Accept multipart/form-data
// @Produce json
// @Param questionId formData string true "Question id"
// @Param title formData string true "Title, min 10 chars"
// @Param content formData string true "Content, min 20 chars"
// @Param tags formData string false "JSON array of tags"
// @Param currentAttachmentId formData string false "Existing attachment id"
// @Param attachment formData file false "Replacement attachment"
// @Success 200 {object} domain.MutationResult "ok"
// @Router /questions [put]
func (h *handlers) update(r *stdhttp.Request) httpkit.Response {
	in, err := bindUpdate(r)
	if err != nil {
		return httpkit.Error(err)
	}
	out, err := h.svc.Update(r.Context(), in)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.OK(out)
}

// swagger:route DELETE /questions/{id} Questions questionsDelete
// @Summary Delete a question by id
// @Tags Questions
// @Produce json
// @Param id path string true "Question id"
// @Success 200 {object} map[string]bool "ok"
// @Router /questions/{id} [delete]
func (h *handlers) remove(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), httpkit.Param(r, "id")); err != nil {
		return nil, err
	}
	return map[string]bool{"success": true}, nil
}

func bindCreate(r *stdhttp.Request) (domain.CreateInput, error) {
	form, err := bind.Multipart(r)
	if err != nil {
		return domain.CreateInput{}, err
	}
	file, err := form.File("attachment")
	if err != nil {
		return domain.CreateInput{}, err
	}
	in := domain.CreateInput{
		Title:    form.String("title"),
		Content:  form.String("content"),
		AuthorID: form.String("authorId"),
		Tags:     form.String("tags"),
	}
	if file != nil {
		in.Attachment = &domain.Attachment{Filename: file.Filename, Data: file.Data}
	}
	return in, nil
}

func bindUpdate(r *stdhttp.Request) (domain.UpdateInput, error) {
	form, err := bind.Multipart(r)
	if err != nil {
		return domain.UpdateInput{}, err
	}
	file, err := form.File("attachment")
	if err != nil {
		return domain.UpdateInput{}, err
	}
	in := domain.UpdateInput{
		QuestionID:          form.String("questionId"),
		Title:               form.String("title"),
		Content:             form.String("content"),
		Tags:                form.String("tags"),
		CurrentAttachmentID: form.String("currentAttachmentId"),
	}
	if file != nil {
		in.Attachment = &domain.Attachment{Filename: file.Filename, Data: file.Data}
	}
	return in, nil
}
