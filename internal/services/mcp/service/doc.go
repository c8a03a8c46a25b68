// Package service assembles the MCP server: it registers the property tools,
// resources, and prompt from the domain package and serves them over stdio or
// streamable HTTP.
package service
