package server

import (
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// RegistrationFunc registers a grpc service with the server.
type RegistrationFunc func(*grpc.Server)

// GRPCConfig has the configuration for the gRPC server.
type GRPCConfig struct {
	Reflection bool
	Traced     bool
}

// NewGRPCServer creates a new gRPC server instance with optional reflection, tracing and service registration.
func NewGRPCServer(cfg GRPCConfig, registerFunc ...RegistrationFunc) *grpc.Server {
	var opts []grpc.ServerOption
	if cfg.Traced {
		opts = append(opts, grpc.StatsHandler(otelgrpc.NewServerHandler()))
	}
	grpcServer := grpc.NewServer(opts...)

	if cfg.Reflection {
		reflection.Register(grpcServer)
	}

	for _, regFunc := range registerFunc {
		regFunc(grpcServer)
	}

	return grpcServer
}
