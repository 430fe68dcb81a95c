// Package service wires MCP transports to the odds tool handlers.
//
// It knows how to run MCP over stdio or streamable HTTP and leaves the
// meaning of each tool to the domain package.
package service
