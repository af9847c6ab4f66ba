// Package domain holds DTOs for questions http and service contracts
package domain

// FeedInput is the input for resolving one feed page
type FeedInput struct {
	Page   int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	Tag    string `json:"tag,omitempty" example:"golang"`
	Search string `json:"search,omitempty" example:"reverse a string"`
}

// Attachment is an uploaded binary carried with a mutation
type Attachment struct {
	Filename string
	Data     []byte
}

// CreateInput is the input for creating a question
// Tags arrives in its serialized wire form and is parsed by the service
type CreateInput struct {
	Title      string      `json:"title" validate:"required,min=10" example:"How do I reverse a string?"`
	Content    string      `json:"content" validate:"required,min=20"`
	AuthorID   string      `json:"authorId" validate:"required" example:"user-1"`
	Tags       string      `json:"tags,omitempty" example:"[\"go\",\"strings\"]"`
	Attachment *Attachment `json:"-"`
}

// UpdateInput is the input for updating a question
type UpdateInput struct {
	QuestionID          string      `json:"questionId" validate:"required"`
	Title               string      `json:"title" validate:"required,min=10"`
	Content             string      `json:"content" validate:"required,min=20"`
	Tags                string      `json:"tags,omitempty"`
	CurrentAttachmentID string      `json:"currentAttachmentId,omitempty"`
	Attachment          *Attachment `json:"-"`
}

// Question mirrors the stored document shape on the wire
type Question struct {
	ID           string   `json:"$id"`
	CreatedAt    string   `json:"$createdAt"`
	UpdatedAt    string   `json:"$updatedAt"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	AuthorID     string   `json:"authorId"`
	Tags         []string `json:"tags"`
	AttachmentID string   `json:"attachmentId,omitempty"`
	URL          string   `json:"url"`
}

// AuthorSummary is a read-only projection of an identity record
type AuthorSummary struct {
	ID         string `json:"$id"`
	Name       string `json:"name"`
	Reputation int    `json:"reputation"`
}

// EnrichedQuestion is a question annotated with derived counters and author
type EnrichedQuestion struct {
	Question
	TotalAnswers int           `json:"totalAnswers"`
	TotalVotes   int           `json:"totalVotes"`
	Author       AuthorSummary `json:"author"`
}

// FeedPage is one resolved page plus the total matching count
type FeedPage struct {
	Total     int                `json:"total"`
	Documents []EnrichedQuestion `json:"documents"`
}

// MutationResult is the response shape for create and update
type MutationResult struct {
	Success  bool     `json:"success"`
	Question Question `json:"question"`
}
