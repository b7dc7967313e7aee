// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	vaultSaltSize = 16
	vaultKeyLen   = 32
	vaultAAD      = "keyplace/vault/v1"
)

// VaultParams are the Argon2id parameters of a [SeedVault].
type VaultParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultVaultParams returns the OWASP (2024) Argon2id recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultVaultParams() VaultParams {
	return VaultParams{Time: 1, Memory: 64 * 1024, Threads: 4}
}

// SeedVault seals agent seeds before they are written to the local key
// store. The sealing key is derived from a local vault passphrase with
// Argon2id and a fresh random salt per blob, then used with AES-256-GCM:
//
//	blob = salt (16) ‖ nonce (12) ‖ ciphertext
type SeedVault struct {
	passphrase *Secret
	params     VaultParams
}

// NewSeedVault copies passphrase into the vault. Call Destroy when done.
func NewSeedVault(passphrase []byte, params VaultParams) *SeedVault {
	p := make([]byte, len(passphrase))
	copy(p, passphrase)
	return &SeedVault{passphrase: NewSecret(p), params: params}
}

// Seal encrypts plaintext. The returned blob is safe to persist.
func (v *SeedVault) Seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, vaultSaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := v.aead(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plaintext, []byte(vaultAAD)), nil
}

// Open decrypts a blob produced by Seal. A wrong vault passphrase or a
// modified blob is reported as [ErrMac]; a truncated blob as
// [ErrSerialization].
func (v *SeedVault) Open(blob []byte) ([]byte, error) {
	if len(blob) < vaultSaltSize {
		return nil, fmt.Errorf("%w: sealed blob too short", ErrSerialization)
	}
	salt, rest := blob[:vaultSaltSize], blob[vaultSaltSize:]

	gcm, err := v.aead(salt)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize+gcm.Overhead() {
		return nil, fmt.Errorf("%w: sealed blob too short", ErrSerialization)
	}
	nonce, ciphertext := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, []byte(vaultAAD))
	if err != nil {
		return nil, ErrMac
	}
	return plaintext, nil
}

// Destroy wipes the vault passphrase.
func (v *SeedVault) Destroy() {
	v.passphrase.Destroy()
}

func (v *SeedVault) aead(salt []byte) (cipher.AEAD, error) {
	if v.passphrase.Destroyed() {
		return nil, ErrSecretDestroyed
	}
	key := argon2.IDKey(v.passphrase.Bytes(), salt, v.params.Time, v.params.Memory, v.params.Threads, vaultKeyLen)
	defer wipe(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
