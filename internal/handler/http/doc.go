// Package http implements the REST transport of the coaching backend.
//
// It wires chi routes to the service layer and owns the cross-cutting
// request concerns: trace ids, access logging, compression, request
// timeouts and bearer-token authentication. Errors returned by services are
// translated to HTTP statuses in one place, errorStatusMap.
package http
