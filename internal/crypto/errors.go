// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"

	"github.com/MKhiriev/go-keyplace/models"
)

// Error kinds produced by this package. Callers match them with [errors.Is];
// wrapped errors keep the underlying cause.
var (
	// ErrInvalidReferent is returned when a referenced entity (e.g. an agent
	// key id) does not exist.
	ErrInvalidReferent = errors.New("invalid referent")

	// ErrMac is returned when an integrity or authenticity check fails. It
	// covers a wrong passphrase, a wrong auth secret and a tampered record
	// alike; callers can not and should not tell these apart.
	ErrMac = errors.New("mac verification failed")

	// ErrSignature is returned when a signature is malformed or does not
	// verify.
	ErrSignature = errors.New("signature verification failed")

	// ErrSerialization is returned when persisted or wire bytes are
	// malformed.
	ErrSerialization = errors.New("serialization failure")

	// ErrStore wraps failures of the underlying persistence layer.
	ErrStore = errors.New("store failure")

	// ErrLengthMismatch is returned when a fixed-width value has the wrong
	// byte count.
	ErrLengthMismatch = models.ErrLengthMismatch

	// ErrEncoding is returned when base64 decoding fails.
	ErrEncoding = models.ErrEncoding

	// ErrFieldCount is returned when Sign/Verify get fewer than one or more
	// than four fields.
	ErrFieldCount = errors.New("signature content must have 1 to 4 fields")

	// ErrInvalidKDFParams is returned for scrypt parameters scrypt would
	// reject.
	ErrInvalidKDFParams = errors.New("invalid kdf parameters")

	// ErrSecretDestroyed is returned when a secret is used after Destroy.
	ErrSecretDestroyed = errors.New("secret already destroyed")
)
