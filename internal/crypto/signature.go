// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto"
	"crypto/ed25519"
	"crypto/sha512"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/MKhiriev/go-keyplace/models"
)

const (
	// SignatureSize is the length of an ed25519 signature.
	SignatureSize = ed25519.SignatureSize

	signatureContext = "allegation"

	minFields = 1
	maxFields = 4
)

// Field is one component of signed content.
type Field interface {
	AsBytes() []byte
}

// Bytes is a raw byte [Field].
type Bytes []byte

func (b Bytes) AsBytes() []byte { return b }

// String is a UTF-8 text [Field].
type String string

func (s String) AsBytes() []byte { return []byte(s) }

// Signature is a detached Ed25519ph signature over 1 to 4 fields.
type Signature [SignatureSize]byte

// ParseSignature copies b into a Signature.
func ParseSignature(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureSize {
		return sig, fmt.Errorf("%w: signature must be %d bytes, got %d", ErrLengthMismatch, SignatureSize, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

// ParseSignatureString decodes the unpadded base64 text form.
func ParseSignatureString(s string) (Signature, error) {
	raw, err := models.DecodeBase64(s)
	if err != nil {
		return Signature{}, err
	}
	return ParseSignature(raw)
}

func (s Signature) String() string {
	return base64.RawStdEncoding.EncodeToString(s[:])
}

// MarshalText implements [encoding.TextMarshaler].
func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignatureString(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Sign signs fields with key using Ed25519ph under the "allegation" context.
// Each field is length-prefixed before hashing, so ("ab","c") and ("a","bc")
// produce different signatures.
func Sign(key *AgentKey, fields ...Field) (Signature, error) {
	var sig Signature

	digest, err := prehash(fields)
	if err != nil {
		return sig, err
	}
	priv, err := key.privateKey()
	if err != nil {
		return sig, err
	}

	raw, err := priv.Sign(nil, digest, signerOptions())
	if err != nil {
		return sig, fmt.Errorf("%w: %w", ErrSignature, err)
	}
	copy(sig[:], raw)
	return sig, nil
}

// Verify reports whether sig is a valid signature of fields by pub. A public
// key of the wrong length or a bad field count never verifies.
func Verify(pub ed25519.PublicKey, sig Signature, fields ...Field) bool {
	return VerifyErr(pub, sig, fields...) == nil
}

// VerifyErr is Verify returning the reason. Invalid signatures are reported
// as [ErrSignature].
func VerifyErr(pub ed25519.PublicKey, sig Signature, fields ...Field) error {
	if len(pub) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: public key must be %d bytes, got %d", ErrSignature, ed25519.PublicKeySize, len(pub))
	}
	digest, err := prehash(fields)
	if err != nil {
		return err
	}
	if err = ed25519.VerifyWithOptions(pub, digest, sig[:], signerOptions()); err != nil {
		return fmt.Errorf("%w: %w", ErrSignature, err)
	}
	return nil
}

// KeyRecordsDigest hashes a batch of key records in order. SetKeys requests
// are signed over this digest.
func KeyRecordsDigest(records []models.KeyRecord) []byte {
	h := sha512.New()
	for _, r := range records {
		writeField(h, []byte(r.Label))
		writeField(h, r.UserAuthKey.Auth[:])
		writeField(h, r.CustodialKey.PubKey[:])
		writeField(h, r.CustodialKey.Mask[:])
		writeField(h, r.CustodialKey.Check[:])
		if r.CustodialKey.Email != nil {
			writeField(h, []byte(*r.CustodialKey.Email))
		} else {
			writeField(h, nil)
		}
	}
	return h.Sum(nil)
}

func signerOptions() *ed25519.Options {
	return &ed25519.Options{Hash: crypto.SHA512, Context: signatureContext}
}

func prehash(fields []Field) ([]byte, error) {
	if len(fields) < minFields || len(fields) > maxFields {
		return nil, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}
	h := sha512.New()
	for _, f := range fields {
		writeField(h, f.AsBytes())
	}
	return h.Sum(nil), nil
}

func writeField(h hash.Hash, b []byte) {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(b)))
	h.Write(n[:])
	h.Write(b)
}
