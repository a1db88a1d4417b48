package classifications

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/freightdock/drayman/pkg/handlers"
	"github.com/freightdock/drayman/pkg/pagination"
	"github.com/freightdock/drayman/pkg/routes"
)

// Handler provides HTTP endpoints for classification operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "classifications"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for classification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/classifications",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/documents/{id}/history", Handler: h.History},
			{Method: "POST", Pattern: "/documents/{id}", Handler: h.Classify},
			{Method: "POST", Pattern: "/documents/{id}/retry", Handler: h.Retry},
			{Method: "POST", Pattern: "/documents/{id}/reclassify", Handler: h.Reclassify},
			{Method: "POST", Pattern: "/reclassify", Handler: h.ReclassifyBatch},
			{Method: "POST", Pattern: "/loads/{loadId}", Handler: h.ClassifyPending},
		},
	}
}

// History returns the paginated classification trail for a document.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.History(r.Context(), id, page)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Classify runs automatic classification against a stored document.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	h.classify(w, r, SourceAutomatic)
}

// Retry re-runs classification at the user's request, recorded as a retry.
func (h *Handler) Retry(w http.ResponseWriter, r *http.Request) {
	h.classify(w, r, SourceRetry)
}

func (h *Handler) classify(w http.ResponseWriter, r *http.Request, source Source) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	result, err := h.sys.Classify(r.Context(), id, source)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Reclassify applies a manual type override to a document.
func (h *Handler) Reclassify(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var cmd ReclassifyCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	result, err := h.sys.Reclassify(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ReclassifyBatch applies one override to multiple documents, reporting
// partial success.
func (h *Handler) ReclassifyBatch(w http.ResponseWriter, r *http.Request) {
	var cmd BatchReclassifyCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if len(cmd.DocumentIDs) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	result, err := h.sys.ReclassifyBatch(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ClassifyPending classifies every unclassified document on a load.
func (h *Handler) ClassifyPending(w http.ResponseWriter, r *http.Request) {
	loadID, err := uuid.Parse(r.PathValue("loadId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	result, err := h.sys.ClassifyPending(r.Context(), loadID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
