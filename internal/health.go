package internal

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// RelayService is the health service name of the request loop.
const RelayService = "chat.relay.Rpc"

// HealthServer exposes the standard gRPC health protocol.
// The relay service starts NOT_SERVING and follows the request loop.
type HealthServer struct {
	log    *slog.Logger
	addr   string
	health *health.Server
}

func NewHealthServer(log *slog.Logger, addr string) *HealthServer {
	h := health.NewServer()
	h.SetServingStatus(RelayService, healthpb.HealthCheckResponse_NOT_SERVING)
	return &HealthServer{log: log, addr: addr, health: h}
}

func (h *HealthServer) Serving() {
	h.health.SetServingStatus(RelayService, healthpb.HealthCheckResponse_SERVING)
}

func (h *HealthServer) NotServing() {
	h.health.SetServingStatus(RelayService, healthpb.HealthCheckResponse_NOT_SERVING)
}

// Check answers like a remote health client would see it.
func (h *HealthServer) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}

// Run serves until ctx is canceled.
func (h *HealthServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", h.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", h.addr, err)
	}

	s := grpc.NewServer()
	healthpb.RegisterHealthServer(s, h.health)

	errChan := make(chan error, 1)
	go func() {
		h.log.Info("Starting gRPC health server", "address", listener.Addr().String())
		errChan <- s.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		h.health.Shutdown()
		s.GracefulStop()
		return nil
	case err = <-errChan:
		return fmt.Errorf("gRPC health server error: %w", err)
	}
}
