package loads

import (
	"errors"
	"net/http"
)

// Domain errors for load operations.
var (
	ErrNotFound  = errors.New("load not found")
	ErrDuplicate = errors.New("load reference number already exists")
	ErrInvalid   = errors.New("invalid load request")
)

// MapHTTPStatus maps load domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
