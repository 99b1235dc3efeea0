package health

import (
	"context"

	"github.com/sbilibin2017/neko-list/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the gRPC health service name of the API.
const ServiceName = "neko.api"

// healthServer answers grpc.health.v1.Health/Check from the Checker.
type healthServer struct {
	healthpb.UnimplementedHealthServer
	checker *Checker
}

// NewGRPCServer returns a gRPC server exposing the health service.
func NewGRPCServer(checker *Checker, opts ...grpc.ServerOption) *grpc.Server {
	srv := grpc.NewServer(opts...)
	healthpb.RegisterHealthServer(srv, &healthServer{checker: checker})
	return srv
}

// Check reports SERVING when every dependency answers.
func (s *healthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if svc := req.GetService(); svc != "" && svc != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", svc)
	}

	if err := s.checker.Check(ctx); err != nil {
		logger.Log.Warnw("grpc health check failed", "error", err)
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
