package http

import (
	"github.com/MKhiriev/quiet-inbox/internal/config"
	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/service"
	"github.com/MKhiriev/quiet-inbox/internal/store"
)

type Handler struct {
	services *service.Services

	// pinger reports database reachability for the health endpoints.
	pinger store.Pinger

	// version is the application version exposed on the root liveness check.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, pinger store.Pinger, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		pinger:   pinger,
		version:  cfg.Version,
		logger:   logger,
	}
}
