package handler

import (
	"github.com/MKhiriev/quiet-inbox/internal/config"
	"github.com/MKhiriev/quiet-inbox/internal/handler/grpc"
	"github.com/MKhiriev/quiet-inbox/internal/handler/http"
	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/service"
	"github.com/MKhiriev/quiet-inbox/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, pinger store.Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, pinger, cfg.App, logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
