// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-keyplace/internal/adapter"
	"github.com/MKhiriev/go-keyplace/internal/app"
	"github.com/MKhiriev/go-keyplace/internal/crypto"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgEmptyKeyList {
			return ErrEmptyKeyList
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgSessionInvalid {
			return ErrSessionInvalid
		}
		return ErrNotFound

	case errors.Is(err, adapter.ErrForbidden):
		return crypto.ErrSignature

	case errors.Is(err, adapter.ErrConflict):
		return ErrAccountAlreadyExists

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrRateLimited
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
