// Package server runs the REST API and the gRPC health endpoint.
//
// Both transports are started together and stopped together: a stop signal
// or a failure of either server triggers a graceful shutdown of all of them.
package server
