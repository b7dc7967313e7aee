// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/base64"
	"errors"
	"fmt"
)

// Key32Size is the width of every fixed-size field exchanged with the
// custodian: public keys, masks, integrity checks and auth secrets.
const Key32Size = 32

// Decoding errors for fixed-width wire fields. They are re-exported by the
// crypto package as part of its error taxonomy.
var (
	// ErrLengthMismatch is returned when a fixed-width field decodes to the
	// wrong number of bytes.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrEncoding is returned when a textual field is not valid base64.
	ErrEncoding = errors.New("base64 decode failure")
)

// Key32 is a 32-byte value that travels as an unpadded standard base64
// string. It implements [encoding.TextMarshaler] so it can be embedded in
// JSON records directly.
type Key32 [Key32Size]byte

// Key32FromBytes copies b into a [Key32]. It returns [ErrLengthMismatch] if
// b is not exactly 32 bytes long.
func Key32FromBytes(b []byte) (Key32, error) {
	var k Key32
	if len(b) != Key32Size {
		return k, fmt.Errorf("%w: want %d bytes, got %d", ErrLengthMismatch, Key32Size, len(b))
	}
	copy(k[:], b)
	return k, nil
}

// ParseKey32 decodes the canonical unpadded standard base64 form.
func ParseKey32(s string) (Key32, error) {
	raw, err := DecodeBase64(s)
	if err != nil {
		return Key32{}, err
	}
	return Key32FromBytes(raw)
}

// String returns the unpadded standard base64 form of k.
func (k Key32) String() string {
	return base64.RawStdEncoding.EncodeToString(k[:])
}

// AsBytes returns a copy of the underlying bytes.
func (k Key32) AsBytes() []byte {
	out := make([]byte, Key32Size)
	copy(out, k[:])
	return out
}

// IsZero reports whether every byte of k is zero.
func (k Key32) IsZero() bool {
	return k == Key32{}
}

// MarshalText implements [encoding.TextMarshaler].
func (k Key32) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Key32) UnmarshalText(text []byte) error {
	parsed, err := ParseKey32(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// DecodeBase64 decodes unpadded standard base64. Padding and non-zero
// trailing bits are rejected so that every value has exactly one text form.
// Failures are reported as [ErrEncoding].
func DecodeBase64(s string) ([]byte, error) {
	raw, err := base64.RawStdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return raw, nil
}
