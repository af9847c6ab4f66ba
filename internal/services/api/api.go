// Package api provides the HTTP API for the application
package api

import (
	"askforge/internal/adapters/appwrite"
	"askforge/internal/platform/config"
	"askforge/internal/platform/logger"
	phttp "askforge/internal/platform/net/http"

	"askforge/internal/modkit"
	"askforge/internal/modkit/httpkit"
	"askforge/internal/modkit/module"
	"askforge/internal/modkit/swaggerkit"

	contributorsmod "askforge/internal/services/api/contributors/module"
	metamod "askforge/internal/services/api/meta/module"
	questionsmod "askforge/internal/services/api/questions/module"
)

// Options are the API options
type Options struct {
	// Config is the root config; modules derive their own prefix views from it
	Config        config.Conf
	Store         *appwrite.Client
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log:   *opt.Logger,
		Cfg:   opt.Config,
		Store: opt.Store,
	}

	mods := []module.Module{
		metamod.New(deps),
		questionsmod.New(deps),
		contributorsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
