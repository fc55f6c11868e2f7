package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/wordtiles/internal/api/apierr"
)

// writeError writes an error response. Unexpected errors are logged.
func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if apierr.Status(err) >= http.StatusInternalServerError {
		logger.Error("request failed", slog.String("error", err.Error()))
	}
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
