package server

// Server is the lifecycle contract the entry point drives.
//
// RunServer blocks until a stop signal arrives and the graceful shutdown
// completes; Shutdown may also be called directly to stop serving early.
type Server interface {
	RunServer()
	Shutdown()
}
