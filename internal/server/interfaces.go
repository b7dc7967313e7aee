package server

import "context"

// Server defines the lifecycle shared by the transport servers of this
// package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones, at
	// most until ctx is done.
	Shutdown(ctx context.Context)
}
