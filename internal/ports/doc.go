// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Storage, cache and clock ports are implemented by outbound adapters and the
// platform layer, and called by the application layer.
package ports
