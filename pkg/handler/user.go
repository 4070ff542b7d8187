package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-http-utils/headers"
	"github.com/platform-mesh/golang-commons/logger"

	"github.com/platform-mesh/backend-resources/pkg/api"
	pmcontext "github.com/platform-mesh/backend-resources/pkg/context"
	"github.com/platform-mesh/backend-resources/pkg/middleware/auth"
	"github.com/platform-mesh/backend-resources/pkg/service"
)

const userIDParam = "id"

// UserHandler exposes user management over HTTP. It never talks to Keycloak directly.
type UserHandler struct {
	svc       service.ServiceInterface
	validator *api.Validator
}

func NewUserHandler(svc service.ServiceInterface, validator *api.Validator) *UserHandler {
	return &UserHandler{
		svc:       svc,
		validator: validator,
	}
}

// Hello greets the caller with its username.
func (h *UserHandler) Hello(w http.ResponseWriter, r *http.Request) {
	principal, err := pmcontext.GetPrincipal(r.Context())
	if err != nil {
		WriteError(w, r, auth.ErrUnauthenticated)
		return
	}

	w.Header().Set(headers.ContentType, contentTypeText)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(principal.Username)); err != nil {
		logger.LoadLoggerFromContext(r.Context()).Error().Err(err).Msg("failed to write hello response")
	}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req api.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.LoadLoggerFromContext(r.Context()).Debug().Err(err).Msg("failed to decode user request")
		WriteError(w, r, ErrMalformedRequest)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		WriteError(w, r, err)
		return
	}

	if err := h.svc.CreateUser(r.Context(), req); err != nil {
		WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetUserByID(r.Context(), chi.URLParam(r, userIDParam))
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}
