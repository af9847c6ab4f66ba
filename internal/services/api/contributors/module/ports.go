package module

import (
	"context"

	contributorsdom "askforge/internal/services/api/contributors/domain"
	contributorssvc "askforge/internal/services/api/contributors/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptContributorsPort adapts the contributors service to the domain port interface
type adaptContributorsPort struct{ svc contributorssvc.Service }

// Top implements the domain ServicePort interface
func (a adaptContributorsPort) Top(ctx context.Context) (contributorsdom.TopContributors, error) {
	return a.svc.Top(ctx)
}
