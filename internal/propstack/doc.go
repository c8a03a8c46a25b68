// Package propstack is a thin client for the Propstack units API. It covers
// the three calls the MCP surface needs (unit search, lookup by unit id, and
// the property status catalog) and normalises the two response envelopes the
// upstream returns.
package propstack
