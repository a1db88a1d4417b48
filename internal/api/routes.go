package api

import (
	"net/http"

	"github.com/freightdock/drayman/internal/config"
	"github.com/freightdock/drayman/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	storage := newStorageHandler(
		runtime.Storage,
		runtime.Logger,
		cfg.Storage.MaxListSize,
	)

	routes.Register(
		mux,
		domain.Documents.Handler(cfg.API.MaxUploadBytes()).Routes(),
		domain.Loads.Handler().Routes(),
		domain.Classifications.Handler().Routes(),
		storage.routes(),
	)
}
