package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-http-utils/headers"
	"github.com/pkg/errors"
	"github.com/platform-mesh/golang-commons/logger"
	"github.com/platform-mesh/golang-commons/sentry"

	"github.com/platform-mesh/backend-resources/pkg/api"
	"github.com/platform-mesh/backend-resources/pkg/metrics"
	"github.com/platform-mesh/backend-resources/pkg/middleware/auth"
	serrors "github.com/platform-mesh/backend-resources/pkg/service/errors"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"

	msgMalformedRequest = "Malformed request body"
	msgUnauthorized     = "Unauthorized"
	msgForbidden        = "Forbidden"
	msgInternal         = "Internal server error"
)

var ErrMalformedRequest = errors.New("malformed request body")

// WriteError is the only place error responses are rendered.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.LoadLoggerFromContext(r.Context())

	var validationErr *api.ValidationError
	var backendErr *serrors.BackendResourcesError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, r, http.StatusBadRequest, validationErr.Fields)
	case errors.As(err, &backendErr):
		if backendErr.Status >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", backendErr.Status).Msg("identity provider operation failed")
			sentry.CaptureError(err, sentry.Tags{"path": r.URL.Path})
		}
		writeText(w, r, backendErr.Status, backendErr.Message)
	case errors.Is(err, ErrMalformedRequest):
		writeText(w, r, http.StatusBadRequest, msgMalformedRequest)
	case errors.Is(err, auth.ErrUnauthenticated):
		writeText(w, r, http.StatusUnauthorized, msgUnauthorized)
	case errors.Is(err, auth.ErrForbidden):
		writeText(w, r, http.StatusForbidden, msgForbidden)
	default:
		log.Error().Err(err).Msg("unexpected error while handling request")
		sentry.CaptureError(err, nil)
		writeText(w, r, http.StatusInternalServerError, msgInternal)
	}
}

func writeText(w http.ResponseWriter, r *http.Request, status int, body string) {
	metrics.ErrorResponses.WithLabelValues(strconv.Itoa(status)).Inc()

	w.Header().Set(headers.ContentType, contentTypeText)
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.LoadLoggerFromContext(r.Context()).Error().Err(err).Msg("failed to write error response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	if status >= http.StatusBadRequest {
		metrics.ErrorResponses.WithLabelValues(strconv.Itoa(status)).Inc()
	}

	w.Header().Set(headers.ContentType, contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.LoadLoggerFromContext(r.Context()).Error().Err(err).Msg("failed to write json response")
	}
}
