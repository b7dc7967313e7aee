// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the response messages shared by the custodian
// handlers and the client error mapper.
//
// Both transports write these strings verbatim (HTTP body, gRPC status
// message) and the client maps them back to service errors, so the wording
// is part of the wire contract.
package app

const (
	// MsgInvalidDataProvided is returned when the request body can not be
	// decoded or a field is missing.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgEmptyKeyList is returned when register or set-keys carries no
	// records.
	MsgEmptyKeyList = "key list is empty"

	// MsgAuthenticationFailed is the single answer to every failed
	// authenticate and recover call: unknown account, unknown label and
	// wrong auth key all look the same.
	MsgAuthenticationFailed = "authentication failed"

	// MsgAccountAlreadyExists is returned when register targets a taken id.
	MsgAccountAlreadyExists = "account already exists"

	// MsgSessionInvalid is returned for a missing, expired or forged
	// session token.
	MsgSessionInvalid = "session is expired or invalid"

	// MsgSignatureInvalid is returned when set-keys is not signed by the
	// account's agent key.
	MsgSignatureInvalid = "signature verification failed"

	// MsgTooManyRequests is returned by the per-account rate limiter.
	MsgTooManyRequests = "too many requests"

	// MsgInternalServerError covers everything the client can not fix.
	MsgInternalServerError = "internal server error"
)
