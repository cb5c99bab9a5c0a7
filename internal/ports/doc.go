// Package ports holds the interfaces the layers meet at. Handlers call the
// service ports, services call the client ports, and the readiness probe
// walks the health ports.
package ports
