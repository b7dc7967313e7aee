// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/MKhiriev/go-keyplace/models"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/scrypt"
)

const (
	passKeySalt = "keyplace/passkey/v1"
	maskInfo    = "keyplace/mask/v1"
	authInfo    = "keyplace/auth/v1"

	rootKeyLen = 32
)

// KDFParams are the scrypt cost parameters used to stretch a passphrase.
type KDFParams struct {
	N int `json:"n" yaml:"n"`
	R int `json:"r" yaml:"r"`
	P int `json:"p" yaml:"p"`
}

// DefaultKDFParams returns scrypt N=2^15, r=8, p=1.
func DefaultKDFParams() KDFParams {
	return KDFParams{N: 1 << 15, R: 8, P: 1}
}

// Validate reports whether scrypt accepts the parameters.
func (p KDFParams) Validate() error {
	if p.N <= 1 || p.N&(p.N-1) != 0 {
		return fmt.Errorf("%w: N must be a power of two greater than 1, got %d", ErrInvalidKDFParams, p.N)
	}
	if p.R <= 0 || p.P <= 0 {
		return fmt.Errorf("%w: r and p must be positive, got r=%d p=%d", ErrInvalidKDFParams, p.R, p.P)
	}
	if uint64(p.R)*uint64(p.P) >= 1<<30 {
		return fmt.Errorf("%w: r*p too large", ErrInvalidKDFParams)
	}
	return nil
}

// KeyDerivation turns passphrases into [PassKey]s. It is stateless apart from
// its parameters and safe for concurrent use.
type KeyDerivation struct {
	params KDFParams
}

// NewKeyDerivation validates params and returns a ready deriver.
func NewKeyDerivation(params KDFParams) (*KeyDerivation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &KeyDerivation{params: params}, nil
}

// Params returns the scrypt parameters in use.
func (d *KeyDerivation) Params() KDFParams {
	return d.params
}

// Derive stretches passphrase with scrypt and splits the result into the
// mask secret and the auth secret. Identical passphrases always yield
// identical PassKeys; the empty passphrase is accepted.
func (d *KeyDerivation) Derive(passphrase *Secret) (*PassKey, error) {
	return d.DeriveWithSalt(passphrase, nil)
}

// DeriveWithSalt is Derive with a non-secret per-account salt appended to
// the fixed domain salt. A nil or empty salt gives the same result as Derive.
func (d *KeyDerivation) DeriveWithSalt(passphrase *Secret, publicSalt []byte) (*PassKey, error) {
	if passphrase == nil || passphrase.Destroyed() {
		return nil, ErrSecretDestroyed
	}

	salt := make([]byte, 0, len(passKeySalt)+len(publicSalt))
	salt = append(salt, passKeySalt...)
	salt = append(salt, publicSalt...)

	root, err := scrypt.Key(passphrase.Bytes(), salt, d.params.N, d.params.R, d.params.P, rootKeyLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKDFParams, err)
	}
	defer wipe(root)

	mask, err := expand(root, maskInfo)
	if err != nil {
		return nil, err
	}
	auth, err := expand(root, authInfo)
	if err != nil {
		wipe(mask)
		return nil, err
	}

	return &PassKey{mask: NewSecret(mask), auth: NewSecret(auth)}, nil
}

func expand(root []byte, info string) ([]byte, error) {
	out := make([]byte, models.Key32Size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, root, nil, []byte(info)), out); err != nil {
		wipe(out)
		return nil, fmt.Errorf("hkdf expand %q: %w", info, err)
	}
	return out, nil
}

// PassKey holds the two secrets derived from one passphrase. MaskSecret
// never leaves the client; only the auth secret is sent to a custodian.
type PassKey struct {
	mask *Secret
	auth *Secret
}

// NewPassKey builds a PassKey from already derived secrets. The inputs are
// copied.
func NewPassKey(maskSecret, authSecret models.Key32) *PassKey {
	return &PassKey{
		mask: NewSecret(maskSecret.AsBytes()),
		auth: NewSecret(authSecret.AsBytes()),
	}
}

// MaskSecret returns the mask secret, or nil after Destroy. The slice
// aliases the PassKey.
func (p *PassKey) MaskSecret() []byte {
	if p == nil {
		return nil
	}
	return p.mask.Bytes()
}

// Auth returns the auth secret in its wire form.
func (p *PassKey) Auth() models.UserAuthKey {
	var k models.Key32
	copy(k[:], p.auth.Bytes())
	return models.UserAuthKey{Auth: k}
}

// Destroyed reports whether the secrets were wiped.
func (p *PassKey) Destroyed() bool {
	return p.mask.Destroyed() || p.auth.Destroyed()
}

// Destroy wipes both secrets. Safe to call more than once.
func (p *PassKey) Destroy() {
	if p == nil {
		return
	}
	p.mask.Destroy()
	p.auth.Destroy()
}
