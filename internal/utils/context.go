// Package utils provides small helpers shared by the custodian server and
// the keyplace CLI: typed context keys, session JWTs, JSON responses, the
// resty client, the gRPC JSON codec and uuid generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// SessionTokenCtxKey holds the raw bearer token of the request. The HTTP
// auth middleware sets it; the custodian service validates it.
var SessionTokenCtxKey = contextKey("sessionToken")

// GetSessionTokenFromContext returns the raw bearer token. ok is false when
// it is missing or empty.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok && token != ""
}
