// Package server wires the odds runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	oddsv1 "github.com/louisbranch/riskodds/api/odds/v1"
	"github.com/louisbranch/riskodds/internal/battle"
	oddsservice "github.com/louisbranch/riskodds/internal/services/odds/api/grpc/odds"
	"github.com/louisbranch/riskodds/internal/services/odds/storage"
	oddssqlite "github.com/louisbranch/riskodds/internal/services/odds/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Options configures an odds server.
type Options struct {
	Addr string
	// DBPath locates the battle record log. Empty disables the log.
	DBPath   string
	MaxUnits int
}

// Server hosts the odds gRPC API and storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *oddssqlite.Store
}

// New creates an odds server listening on opts.Addr.
func New(ctx context.Context, opts Options) (*Server, error) {
	listener, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", opts.Addr, err)
	}

	var (
		sqliteStore *oddssqlite.Store
		recordStore storage.BattleRecordStore
	)
	if path := strings.TrimSpace(opts.DBPath); path != "" {
		sqliteStore, err = openOddsStore(ctx, path)
		if err != nil {
			_ = listener.Close()
			return nil, err
		}
		recordStore = sqliteStore
	}

	calc := battle.NewCalculator(battle.WithMaxUnits(opts.MaxUnits))
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	oddsv1.RegisterOddsServiceServer(grpcServer, oddsservice.NewService(calc, recordStore))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(oddsv1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      sqliteStore,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves an odds server until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	server, err := New(ctx, opts)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve runs the gRPC server until ctx is cancelled, then stops gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("odds server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	var err error
	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.grpcServer.GracefulStop()
		err = <-serveErr
	case err = <-serveErr:
	}
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close odds store: %v", err)
		}
	}
}

func openOddsStore(ctx context.Context, path string) (*oddssqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := oddssqlite.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open odds sqlite store: %w", err)
	}
	return store, nil
}
