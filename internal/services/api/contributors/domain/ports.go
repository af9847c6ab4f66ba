package domain

import "context"

// ServicePort defines the service contract for contributors
type ServicePort interface {
	Top(ctx context.Context) (TopContributors, error)
}
