package modkit

import (
	"askforge/internal/adapters/appwrite"
	"askforge/internal/platform/config"
	"askforge/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log   logger.Logger
	Cfg   config.Conf
	Store *appwrite.Client
}
