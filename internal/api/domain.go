package api

import (
	"github.com/freightdock/drayman/internal/classifications"
	"github.com/freightdock/drayman/internal/classifier"
	"github.com/freightdock/drayman/internal/documents"
	"github.com/freightdock/drayman/internal/loads"
	"github.com/freightdock/drayman/internal/notifications"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents       documents.System
	Loads           loads.System
	Classifications classifications.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	docsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		runtime.Logger,
		runtime.Pagination,
	)

	loadsSystem := loads.New(
		runtime.Database.Connection(),
		docsSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	classificationsSystem := classifications.New(
		runtime.Database.Connection(),
		docsSystem,
		runtime.Storage,
		classifier.NewOpenAI(&runtime.Classifier, runtime.Logger),
		notifications.NewLog(runtime.Logger),
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Documents:       docsSystem,
		Loads:           loadsSystem,
		Classifications: classificationsSystem,
	}
}
