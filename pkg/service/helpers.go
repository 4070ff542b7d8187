package service

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/platform-mesh/golang-commons/logger"
)

func setupLogger(ctx context.Context) *logger.Logger {
	log := logger.LoadLoggerFromContext(ctx)

	requestID := middleware.GetReqID(ctx)

	return logger.NewFromZerolog(
		log.With().Str("requestid", requestID).Logger(),
	)
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}
