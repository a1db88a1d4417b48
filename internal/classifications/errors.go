package classifications

import (
	"errors"
	"net/http"

	"github.com/freightdock/drayman/internal/classifier"
	"github.com/freightdock/drayman/internal/documents"
)

// Domain errors for classification operations.
var (
	// ErrNoChange indicates a reclassification targeting the document's
	// current type. A reclassification must represent an actual change.
	ErrNoChange = errors.New("document already has the requested type")
	// ErrInvalidSource indicates an unknown classification source tag.
	ErrInvalidSource = errors.New("invalid classification source")
	// ErrInvalidRequest indicates a malformed request body or path parameter.
	ErrInvalidRequest = errors.New("invalid classification request")
)

// MapHTTPStatus maps classification domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, documents.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNoChange) {
		return http.StatusConflict
	}
	if errors.Is(err, documents.ErrInvalidType) ||
		errors.Is(err, ErrInvalidSource) ||
		errors.Is(err, ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	if errors.Is(err, classifier.ErrServiceFailure) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
