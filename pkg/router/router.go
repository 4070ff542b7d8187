package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-http-utils/headers"
	pmconfig "github.com/platform-mesh/golang-commons/config"
	"github.com/platform-mesh/golang-commons/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/platform-mesh/backend-resources/pkg/config"
	"github.com/platform-mesh/backend-resources/pkg/handler"
	"github.com/platform-mesh/backend-resources/pkg/middleware/auth"
)

func CreateRouter(
	commonCfg *pmconfig.CommonServiceConfig,
	serviceCfg *config.ServiceConfig,
	userHandler *handler.UserHandler,
	authMw *auth.Middleware,
	log *logger.Logger,
	mws []func(http.Handler) http.Handler,
) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)

	// On local the service answers CORS requests itself, on the cluster this is handled by istio
	if commonCfg.IsLocal {
		router.Use(cors.New(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowCredentials: true,
			AllowedHeaders:   []string{headers.Accept, headers.Authorization, headers.ContentType, headers.XCSRFToken},
			Debug:            false,
		}).Handler)
	}

	router.Route("/api/users", func(r chi.Router) {
		r.Use(mws...)
		r.Use(authMw.Authenticate())

		r.Get("/hello", userHandler.Hello)

		r.Group(func(r chi.Router) {
			r.Use(authMw.RequireRole(serviceCfg.Auth.ModeratorRole))
			r.Post("/", userHandler.CreateUser)
			r.Get("/{id}", userHandler.GetUser)
		})
	})

	setupObsHandler(router, log)
	return router
}

func setupObsHandler(router *chi.Mux, log *logger.Logger) {
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("OK"))
		if err != nil {
			log.Error().Err(err).Msg("Failed to write response for health check")
		}
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("OK"))
		if err != nil {
			log.Error().Err(err).Msg("Failed to write response for readiness check")
		}
	})
}
