package domain

import "context"

// ServicePort defines the service contract for questions
type ServicePort interface {
	Feed(ctx context.Context, in FeedInput) (FeedPage, error)
	Get(ctx context.Context, id string) (Question, error)
	Create(ctx context.Context, in CreateInput) (MutationResult, error)
	Update(ctx context.Context, in UpdateInput) (MutationResult, error)
	Delete(ctx context.Context, id string) error
}
