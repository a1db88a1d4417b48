package api

import (
	"github.com/freightdock/drayman/internal/classifier"
	"github.com/freightdock/drayman/internal/config"
	"github.com/freightdock/drayman/internal/infrastructure"
	"github.com/freightdock/drayman/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Classifier classifier.Config
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Classifier: cfg.Classifier,
		Pagination: cfg.API.Pagination,
	}
}
