package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/institute-cms/internal/domain"
)

// writeServiceError maps a service error onto the HTTP status and stable code
// for its domain sentinel. Unmapped errors are logged and hidden behind a
// generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, domain.CodeServerError
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		status, code = http.StatusBadRequest, domain.CodeInvalidInput
	case errors.Is(err, domain.ErrConflict):
		status, code = http.StatusBadRequest, domain.CodeConflict
	case errors.Is(err, domain.ErrExpired):
		status, code = http.StatusBadRequest, domain.CodeExpired
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = http.StatusUnauthorized, domain.CodeUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status, code = http.StatusForbidden, domain.CodeForbidden
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, domain.CodeNotFound
	case errors.Is(err, domain.ErrDelivery):
		status, code = http.StatusInternalServerError, domain.CodeDeliveryFailed
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "code", code, "err", err)
		msg = "internal server error"
		if code == domain.CodeDeliveryFailed {
			msg = "could not send email"
		}
	}
	writeError(w, status, code, msg)
}
