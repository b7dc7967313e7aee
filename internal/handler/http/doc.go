// Package http serves the custodian REST API.
//
// Routes live under /api/custodian: register, auth and recover are public,
// PUT keys needs a bearer session. Every request passes through trace id,
// access log and gzip middleware before reaching the custodian service.
// Service errors are mapped to status codes in one ordered table shared in
// spirit with the gRPC handler.
package http
