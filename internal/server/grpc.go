package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/fitcoach/internal/config"
	myGRPC "github.com/MKhiriev/fitcoach/internal/handler/grpc"
	"github.com/MKhiriev/fitcoach/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		server:  s,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server Listen: %w", err)
	}

	g.logger.Info().Str("address", listener.Addr().String()).Msg("Launching gRPC server")
	// Serve reports ErrServerStopped when shutdown won the race with startup
	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) RunServer() {
	if err := g.serve(); err != nil {
		g.logger.Err(err).Send()
	}
}

// Shutdown reports NOT_SERVING first so health probes drain traffic, then
// waits for in-flight RPCs.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
