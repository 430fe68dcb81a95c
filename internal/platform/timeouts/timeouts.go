// Package timeouts holds the durations shared by riskodds servers and clients.
package timeouts

import "time"

// GRPCDial caps the wait for the odds service to become healthy.
const GRPCDial = 2 * time.Second

// GRPCRequest caps a single odds call made by the MCP adapter.
const GRPCRequest = 10 * time.Second

// ReadHeader limits how long the MCP HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits graceful shutdown of the MCP HTTP server.
const Shutdown = 5 * time.Second
