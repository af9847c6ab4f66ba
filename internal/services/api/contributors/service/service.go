// Package service contains the contributors board workflow
package service

import (
	"context"

	"askforge/internal/modkit/storekit"
	"askforge/internal/platform/logger"
	"askforge/internal/services/api/contributors/domain"
	"askforge/internal/services/api/contributors/repo"
)

// boardSize caps the contributors board
const boardSize = 10

// Service defines the service contract for contributors
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder storekit.Binder[repo.Repo]
	store  storekit.Client
}

// New creates a new contributors service
func New(store storekit.Client, binder storekit.Binder[repo.Repo]) *Svc {
	if binder == nil {
		panic("contributors.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: storekit.MustBind(binder, store), binder: binder, store: store}
}

// Top lists the top contributors
// directory failures degrade to an empty board instead of erroring the page
func (s *Svc) Top(ctx context.Context) (domain.TopContributors, error) {
	list, err := s.Repo.TopUsers(ctx, boardSize)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("contributors lookup failed, returning empty board")
		return domain.TopContributors{Users: []domain.Contributor{}}, nil
	}

	out := make([]domain.Contributor, 0, len(list.Users))
	for _, u := range list.Users {
		out = append(out, domain.Contributor{
			ID:         u.ID,
			Name:       u.Name,
			Reputation: u.Reputation(),
			UpdatedAt:  u.UpdatedAt,
		})
	}
	return domain.TopContributors{Total: list.Total, Users: out}, nil
}
