// Package grpc implements the gRPC transport layer of the application.
// It currently exposes the standard gRPC health-checking protocol
// (grpc.health.v1.Health) backed by a database reachability probe, so that
// orchestrators can probe the instance over the same port future RPC
// services will use.
package grpc

import (
	"context"

	"github.com/MKhiriev/quiet-inbox/internal/logger"
	"github.com/MKhiriev/quiet-inbox/internal/service"
	"github.com/MKhiriev/quiet-inbox/internal/store"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer, the database pinger, and the
// structured logger so that gRPC method handlers can delegate business logic
// and emit consistent logs. A handler instance is created once at startup and
// shared by the gRPC server.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	// services provides access to all application business operations.
	services *service.Services

	// pinger reports database reachability for health checks.
	pinger store.Pinger

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container,
// database pinger, and logger, and returns the initialized instance.
func NewHandler(services *service.Services, pinger store.Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		pinger:   pinger,
		logger:   logger,
	}
}

// Check implements the health-checking protocol's unary probe. The instance
// is SERVING only while the database answers pings.
func (h *Handler) Check(ctx context.Context, _ *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	return &grpc_health_v1.HealthCheckResponse{Status: h.servingStatus(ctx)}, nil
}

// Watch implements the health-checking protocol's streaming probe. It reports
// the current status once and then holds the stream open until the client
// goes away; status transitions are picked up by the client's re-probes.
func (h *Handler) Watch(request *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	ctx := stream.Context()

	if err := stream.Send(&grpc_health_v1.HealthCheckResponse{Status: h.servingStatus(ctx)}); err != nil {
		h.logger.Err(err).Msg("health watch send failed")
		return err
	}

	<-ctx.Done()
	return ctx.Err()
}

func (h *Handler) servingStatus(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Err(err).Msg("database ping failed")
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}

	return grpc_health_v1.HealthCheckResponse_SERVING
}
