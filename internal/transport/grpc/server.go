// Package grpcserver runs the gRPC listener of the service: health
// checking, reflection and a logging interceptor.
package grpcserver

import (
	"context"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// ServiceName is the health-checked service name.
const ServiceName = "market.v1.Catalog"

// Server wraps a grpc.Server with its health service.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
}

// New creates a server in NOT_SERVING state; call SetServing once the
// store is reachable.
func New(logger logrus.FieldLogger) *Server {
	s := &Server{
		grpc:   grpc.NewServer(grpc.ChainUnaryInterceptor(unaryInterceptor(logger))),
		health: health.NewServer(),
	}

	healthpb.RegisterHealthServer(s.grpc, s.health)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	// Enable reflection (for grpcurl and debugging)
	reflection.Register(s.grpc)
	return s
}

// SetServing flips the overall and per-service health status.
func (s *Server) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}

// Serve accepts connections on lis until Stop.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop reports NOT_SERVING to watchers, then drains in-flight calls.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}

// unaryInterceptor logs each call and hides non-status errors from clients.
func unaryInterceptor(logger logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()

		resp, handlerErr := handler(ctx, req)
		err := toStatus(handlerErr)

		entry := logger.WithFields(logrus.Fields{
			"method":  info.FullMethod,
			"code":    status.Code(err).String(),
			"latency": time.Since(start).String(),
		})
		if msg, ok := req.(proto.Message); ok {
			entry = entry.WithField("req_bytes", proto.Size(msg))
		}
		if err != nil {
			entry.WithError(handlerErr).Warn("grpc call failed")
		} else {
			entry.Debug("grpc call handled")
		}
		return resp, err
	}
}
