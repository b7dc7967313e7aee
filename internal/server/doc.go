// Package server runs the custodian's transports.
//
// It listens on the configured HTTP and gRPC addresses, serves until a stop
// signal arrives and then drains both listeners.
package server
