package config

import (
	"fmt"
	"os"

	"github.com/freightdock/drayman/pkg/formatting"
	"github.com/freightdock/drayman/pkg/middleware"
	"github.com/freightdock/drayman/pkg/pagination"
)

// API holds settings for the HTTP API surface.
type API struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Pagination    pagination.Config     `toml:"pagination"`
}

// MaxUploadBytes returns MaxUploadSize parsed into a byte count.
func (a *API) MaxUploadBytes() int64 {
	n, _ := formatting.ParseBytes(a.MaxUploadSize)
	return n
}

// Finalize applies defaults, environment variable overrides, and validation.
func (a *API) Finalize() error {
	if a.BasePath == "" {
		a.BasePath = "/api"
	}
	if a.MaxUploadSize == "" {
		a.MaxUploadSize = "25 MB"
	}

	if v := os.Getenv("DRAYMAN_API_BASE_PATH"); v != "" {
		a.BasePath = v
	}
	if v := os.Getenv("DRAYMAN_API_MAX_UPLOAD_SIZE"); v != "" {
		a.MaxUploadSize = v
	}

	if err := a.CORS.Finalize(&middleware.CORSEnv{
		Enabled:          "DRAYMAN_CORS_ENABLED",
		Origins:          "DRAYMAN_CORS_ORIGINS",
		AllowedMethods:   "DRAYMAN_CORS_ALLOWED_METHODS",
		AllowedHeaders:   "DRAYMAN_CORS_ALLOWED_HEADERS",
		AllowCredentials: "DRAYMAN_CORS_ALLOW_CREDENTIALS",
		MaxAge:           "DRAYMAN_CORS_MAX_AGE",
	}); err != nil {
		return fmt.Errorf("cors config: %w", err)
	}

	if err := a.Pagination.Finalize(&pagination.ConfigEnv{
		DefaultPageSize: "DRAYMAN_PAGINATION_DEFAULT_PAGE_SIZE",
		MaxPageSize:     "DRAYMAN_PAGINATION_MAX_PAGE_SIZE",
	}); err != nil {
		return fmt.Errorf("pagination config: %w", err)
	}

	if _, err := formatting.ParseBytes(a.MaxUploadSize); err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}

	return nil
}

// Merge overwrites non-zero fields from overlay.
func (a *API) Merge(overlay *API) {
	if overlay.BasePath != "" {
		a.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		a.MaxUploadSize = overlay.MaxUploadSize
	}
	a.CORS.Merge(&overlay.CORS)
	a.Pagination.Merge(&overlay.Pagination)
}
