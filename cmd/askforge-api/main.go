// @title         Askforge API
// @version       0.1.0
// @description   Q&A forum backend over an external document, blob, and identity store

package main

import (
	"context"

	"askforge/internal/adapters/appwrite"
	"askforge/internal/platform/config"
	"askforge/internal/platform/logger"
	phttp "askforge/internal/platform/net/http"

	"askforge/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// backend client credentials live under APPWRITE_*
	store := appwrite.NewClient(appwrite.FromConfig(root.Prefix("APPWRITE_")))

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        root,
			Store:         store,
			Logger:        l,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
