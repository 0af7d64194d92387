// Package grpc exposes the storefront health over the standard gRPC health-checking protocol.
package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// CatalogServiceName is the service name reported by the health server.
const CatalogServiceName = "storefront.v1.Catalog"

// Probe reports whether a dependency of the catalog answers.
type Probe func(ctx context.Context) error

// Health keeps the serving status of the catalog in sync with its probe.
type Health struct {
	server *health.Server
	probe  Probe
	logger *slog.Logger
}

// NewHealth creates a Health that reports NOT_SERVING until the first successful check.
func NewHealth(probe Probe, logger *slog.Logger) *Health {
	h := &Health{
		server: health.NewServer(),
		probe:  probe,
		logger: logger.With("component", "grpc-health"),
	}
	h.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return h
}

// Register adds the health service to s.
func (h *Health) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

// Check runs the probe once and updates the serving status. It returns the probe error.
func (h *Health) Check(ctx context.Context) error {
	if err := h.probe(ctx); err != nil {
		h.logger.WarnContext(ctx, "Catalog probe failed", "error", err)
		h.set(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}
	h.set(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Watch re-checks every interval until ctx is done, then marks the catalog as not serving.
func (h *Health) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	_ = h.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			_ = h.Check(ctx)
		}
	}
}

func (h *Health) set(status healthpb.HealthCheckResponse_ServingStatus) {
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(CatalogServiceName, status)
}
