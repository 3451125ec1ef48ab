package server

import "context"

// Server is the lifecycle of the transport server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts
	// down gracefully.
	RunServer()

	// Run serves until ctx is done. It returns the listener error, if any.
	Run(ctx context.Context) error

	// Shutdown stops accepting requests and waits for running ones.
	Shutdown()
}
