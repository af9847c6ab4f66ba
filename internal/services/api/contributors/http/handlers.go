// Package http provides http transport for contributors
package http

import (
	stdhttp "net/http"

	"askforge/internal/modkit/httpkit"
	svc "askforge/internal/services/api/contributors/service"
)

// Register mounts contributor endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/top", h.top)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /contributors/top Contributors contributorsTop
// @Summary Top contributors by directory listing
// @Tags Contributors
// @Produce json
// @Success 200 {object} domain.TopContributors "ok"
// @Router /contributors/top [get]
func (h *handlers) top(r *stdhttp.Request) (any, error) {
	return h.svc.Top(r.Context())
}
