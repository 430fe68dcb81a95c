package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/riskodds/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	serverName = "riskodds"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind selects how MCP messages reach the server.
type TransportKind string

const (
	TransportStdio TransportKind = "stdio"
	TransportHTTP  TransportKind = "http"
)

// ParseTransport validates a transport name from config.
func ParseTransport(value string) (TransportKind, error) {
	switch kind := TransportKind(strings.ToLower(strings.TrimSpace(value))); kind {
	case "", TransportStdio:
		return TransportStdio, nil
	case TransportHTTP:
		return TransportHTTP, nil
	default:
		return "", fmt.Errorf("transport %q is not supported", value)
	}
}

// Config configures the MCP adapter.
type Config struct {
	OddsAddr  string
	Transport TransportKind
	// HTTPAddr is only used by the HTTP transport. Defaults to localhost:8091.
	HTTPAddr string
}

// Server hosts the MCP server and the odds connection behind it.
type Server struct {
	mcpServer *mcp.Server
	conn      *grpc.ClientConn
}

// newServer registers every odds tool against client. conn may be nil when
// the caller owns the connection.
func newServer(client domain.OddsClient, conn *grpc.ClientConn) (*Server, error) {
	if client == nil {
		return nil, errors.New("odds client is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerOddsTools(mcpServer, client)
	return &Server{mcpServer: mcpServer, conn: conn}, nil
}

func registerOddsTools(server *mcp.Server, client domain.OddsClient) {
	mcp.AddTool(server, domain.RollResultsTool(), domain.RollResultsHandler(client))
	mcp.AddTool(server, domain.BattleTool(), domain.BattleHandler(client))
	mcp.AddTool(server, domain.RollRoundTool(), domain.RollRoundHandler(client))
	mcp.AddTool(server, domain.PresetsTool(), domain.PresetsHandler(client))
	mcp.AddTool(server, domain.BattleRecordsTool(), domain.BattleRecordsHandler(client))
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

// serveWithTransport runs the MCP server on transport. The gRPC connection
// is closed on every exit path.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
