package module

import (
	"context"

	questionsdom "askforge/internal/services/api/questions/domain"
	questionssvc "askforge/internal/services/api/questions/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptQuestionsPort adapts the questions service to the domain port interface
type adaptQuestionsPort struct{ svc questionssvc.Service }

// Feed implements the domain ServicePort interface
func (a adaptQuestionsPort) Feed(ctx context.Context, in questionsdom.FeedInput) (questionsdom.FeedPage, error) {
	return a.svc.Feed(ctx, in)
}

// Get implements the domain ServicePort interface
func (a adaptQuestionsPort) Get(ctx context.Context, id string) (questionsdom.Question, error) {
	return a.svc.Get(ctx, id)
}

// Create implements the domain ServicePort interface
func (a adaptQuestionsPort) Create(ctx context.Context, in questionsdom.CreateInput) (questionsdom.MutationResult, error) {
	return a.svc.Create(ctx, in)
}

// Update implements the domain ServicePort interface
func (a adaptQuestionsPort) Update(ctx context.Context, in questionsdom.UpdateInput) (questionsdom.MutationResult, error) {
	return a.svc.Update(ctx, in)
}

// Delete implements the domain ServicePort interface
func (a adaptQuestionsPort) Delete(ctx context.Context, id string) error {
	return a.svc.Delete(ctx, id)
}
