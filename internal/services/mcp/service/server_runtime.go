package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	oddsv1 "github.com/louisbranch/riskodds/api/odds/v1"
	platformgrpc "github.com/louisbranch/riskodds/internal/platform/grpc"
	"github.com/louisbranch/riskodds/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

// Run is the MCP entrypoint and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, cfg.OddsAddr, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithTransport dials the odds service and serves MCP over transport.
func runWithTransport(ctx context.Context, oddsAddr string, transport mcp.Transport) error {
	server, err := dialServer(ctx, oddsAddr)
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, transport)
}

func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	server, err := dialServer(ctx, cfg.OddsAddr)
	if err != nil {
		return err
	}
	defer func() {
		if err := server.Close(); err != nil {
			log.Printf("close odds connection: %v", err)
		}
	}()
	return newHTTPTransport(cfg.HTTPAddr, server.mcpServer).Start(ctx)
}

func dialServer(ctx context.Context, addr string) (*Server, error) {
	conn, err := dialOdds(ctx, addr)
	if err != nil {
		return nil, err
	}
	server, err := newServer(oddsv1.NewOddsServiceClient(conn), conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return server, nil
}

func dialOdds(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logf := func(format string, args ...any) {
		log.Printf("odds %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(ctx, addr, oddsv1.ServiceName, timeouts.GRPCDial, logf)
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) {
			if dialErr.Stage == platformgrpc.DialStageConnect {
				return nil, fmt.Errorf("connect to odds server at %s: %w", addr, dialErr.Err)
			}
			return nil, dialErr.Err
		}
		return nil, err
	}
	return conn, nil
}
