package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/louisbranch/riskodds/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const defaultHTTPAddr = "localhost:8091"

var listenTCP = net.Listen

// httpTransport serves MCP over streamable HTTP at /mcp.
type httpTransport struct {
	addr   string
	server *mcp.Server
}

func newHTTPTransport(addr string, server *mcp.Server) *httpTransport {
	if addr == "" {
		addr = defaultHTTPAddr
	}
	return &httpTransport{addr: addr, server: server}
}

func (t *httpTransport) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return t.server
	}, nil))
	mux.HandleFunc("/mcp/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

// Start listens on the configured address and blocks until ctx ends.
func (t *httpTransport) Start(ctx context.Context) error {
	listener, err := listenTCP("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", t.addr, err)
	}
	return t.serve(ctx, listener)
}

func (t *httpTransport) serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           t.handler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("MCP HTTP server listening at %s", listener.Addr())
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown MCP HTTP server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP HTTP: %w", err)
	}
}
