package grpc

import "errors"

var errMissingSession = errors.New("no authorization metadata")
