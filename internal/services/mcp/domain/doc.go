// Package domain maps MCP tool calls onto the odds gRPC API.
//
// Each tool pairs a schema-tagged input and output with a handler that
// forwards to OddsClient under a bounded timeout.
package domain
