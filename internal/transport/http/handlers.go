package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"flightplanner/internal/platform/middleware"
	dErrors "flightplanner/pkg/domain-errors"
	"flightplanner/pkg/platform/httputil"
)

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeBadRequest, "Invalid id.")
	}
	return id, nil
}

func invalidQueryParam(name string) error {
	return dErrors.Newf(dErrors.CodeBadRequest, "Query parameter '%s' must be a number.", name)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return dErrors.New(dErrors.CodeBadRequest, "Invalid request body.")
	}
	return nil
}

// writeFailure logs server-side failures and hands the error to the shared
// JSON error writer. Client errors are logged at warn so operators can spot
// misbehaving callers without alert noise.
func writeFailure(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if logger != nil {
		args := []any{
			"request_id", middleware.GetRequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error(),
		}
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			logger.ErrorContext(r.Context(), "request failed", args...)
		} else {
			logger.WarnContext(r.Context(), "request rejected", args...)
		}
	}
	httputil.WriteError(w, err)
}
