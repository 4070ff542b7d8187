package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	pmcontext "github.com/platform-mesh/golang-commons/context"
	"github.com/platform-mesh/golang-commons/logger"
	pmmws "github.com/platform-mesh/golang-commons/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/platform-mesh/backend-resources/pkg/api"
	"github.com/platform-mesh/backend-resources/pkg/config"
	"github.com/platform-mesh/backend-resources/pkg/handler"
	"github.com/platform-mesh/backend-resources/pkg/metrics"
	"github.com/platform-mesh/backend-resources/pkg/middleware/auth"
	"github.com/platform-mesh/backend-resources/pkg/router"
	"github.com/platform-mesh/backend-resources/pkg/service"
	"github.com/platform-mesh/backend-resources/pkg/service/keycloak"
)

var serverCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start serving",
	Long:  `Start the backend-resources service as a Webservice`,
	Run: func(cmd *cobra.Command, args []string) {
		serveFunc()
	},
}

func serveFunc() {
	ctx, _, shutdown := pmcontext.StartContext(log, serviceCfg, defaultCfg.ShutdownTimeout)
	defer shutdown()

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	idp, err := keycloak.New(ctx, serviceCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create keycloak client")
	}

	verifier, err := newVerifier(ctx, serviceCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create token verifier")
	}

	validator, err := api.NewValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create request validator")
	}

	svc := service.New(serviceCfg.Keycloak.Realm, idp)
	userHandler := handler.NewUserHandler(svc, validator)
	authMw := auth.New(verifier, *serviceCfg, handler.WriteError)

	// Prepare Middlewares
	mws := pmmws.CreateMiddleware(log, true)

	r := router.CreateRouter(defaultCfg, serviceCfg, userHandler, authMw, log, mws)

	log.Info().Str("realm", serviceCfg.Keycloak.Realm).Msg("Router created")
	start(serviceCfg, otelhttp.NewHandler(r, "backend-resources"), ctx, log)
}

func newVerifier(ctx context.Context, cfg *config.ServiceConfig) (auth.Verifier, error) {
	if !cfg.Auth.VerifyTokens {
		log.Warn().Msg("token signatures are not verified, tokens must be validated upstream")
		return auth.NewTrustedParser(), nil
	}
	verifier, err := auth.NewOIDCVerifier(ctx, cfg.Keycloak.IssuerURL())
	if err != nil {
		return nil, err
	}
	return verifier, nil
}

func start(serviceCfg *config.ServiceConfig, h http.Handler, ctx context.Context, log *logger.Logger) {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", serviceCfg.Port),
		Handler:      h,
		ReadTimeout:  20 * time.Second,
		WriteTimeout: 20 * time.Second,
		BaseContext:  func(listener net.Listener) context.Context { return ctx },
	}
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("failed to start http server")
		}
	}()

	log.Info().Msgf("service started on port: %d", serviceCfg.Port)
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Panic().Err(err).Msg("Graceful shutdown failed")
	}
}
