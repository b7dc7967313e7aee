// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserAuthKey is the only secret a custodian stores for a label. It proves
// that the requester knows the passphrase behind that label, but it can not
// be used to unmask the private key.
type UserAuthKey struct {
	Auth Key32 `json:"auth"`
}

// CustodialKey is the masked form of an agent private key. It is safe to
// hand to an untrusted custodian: without the passphrase-derived mask secret
// the Mask field is indistinguishable from noise.
type CustodialKey struct {
	// PubKey is the ed25519 public key of the masked identity.
	PubKey Key32 `json:"pubkey"`

	// Mask is the private seed XORed with the mask secret.
	Mask Key32 `json:"mask"`

	// Check binds Mask, PubKey and the seed together so that unmasking with
	// the wrong secret is detected.
	Check Key32 `json:"check"`

	// Email is optional, non-secret contact metadata.
	Email *string `json:"email,omitempty"`
}

// KeyRecord pairs one recovery label with the auth key and custodial key
// registered under it.
type KeyRecord struct {
	Label        string       `json:"label"`
	UserAuthKey  UserAuthKey  `json:"user_auth_key"`
	CustodialKey CustodialKey `json:"custodial_key"`
}

// AuthQuery is a single (label, auth key) claim sent to the custodian.
type AuthQuery struct {
	Label       string      `json:"label"`
	UserAuthKey UserAuthKey `json:"user_auth_key"`
}

// AuthMatch is returned when a query matched a stored record.
type AuthMatch struct {
	Label        string       `json:"label"`
	CustodialKey CustodialKey `json:"custodial_key"`
}

// Account is the custodian-side owner of an ordered set of key records.
type Account struct {
	// ID is the caller-chosen account identifier (e.g. an email address).
	ID string `json:"account_id"`

	// Name is the non-secret display name.
	Name string `json:"name"`

	// CreatedAt is assigned by the store.
	CreatedAt time.Time `json:"created_at"`
}

// Session is the proof of a previous successful register/authenticate call.
//
// It is a bearer token: anyone replaying it can call SetKeys until it
// expires. Integrators should prefer per-request challenge/response.
type Session struct {
	AccountID string    `json:"account_id"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}
