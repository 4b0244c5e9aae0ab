package server

// Server is the lifecycle contract for the HTTP server hosting the stub
// inventory backend.
//
// Implementations block in [RunServer] until a shutdown signal arrives and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server, draining in-flight requests.
	Shutdown()
}
