// Package domain defines the MCP tool, resource, and prompt handlers for the
// Propstack property inventory. Handlers take the API client as an interface
// and shape every outbound record through the sanitization pass.
package domain
