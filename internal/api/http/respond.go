package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"rentdash-backend/internal/domain"
	"rentdash-backend/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError translates data-layer failures uniformly: unknown-id updates
// become 404, everything else a generic 500. The error detail goes to the
// log, not the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsNotFound(err) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

// reserved query parameters; everything else is passed through as an
// equality filter.
var reservedParams = map[string]bool{
	"page":       true,
	"limit":      true,
	"sort_by":    true,
	"sort_order": true,
}

func parseQueryOptions(r *http.Request) domain.QueryOptions {
	q := r.URL.Query()

	opts := domain.QueryOptions{
		SortBy:    q.Get("sort_by"),
		SortOrder: domain.SortOrder(q.Get("sort_order")),
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		opts.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		opts.Limit = v
	}

	for key, values := range q {
		if reservedParams[key] || len(values) == 0 {
			continue
		}
		if opts.Filters == nil {
			opts.Filters = map[string]string{}
		}
		opts.Filters[key] = values[0]
	}
	return opts
}
