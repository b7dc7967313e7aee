// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-keyplace/models"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// AgentIDPrefix starts the text form of every [AgentID].
const AgentIDPrefix = "kp1"

// AgentID is the stable public identifier of an agent key: the prefix
// followed by base58(blake2b-256(public key)).
type AgentID string

// NewAgentID computes the identifier of pub.
func NewAgentID(pub ed25519.PublicKey) AgentID {
	sum := blake2b.Sum256(pub)
	return AgentID(AgentIDPrefix + base58.Encode(sum[:]))
}

// ParseAgentID checks the prefix and the base58 payload length.
func ParseAgentID(s string) (AgentID, error) {
	if !strings.HasPrefix(s, AgentIDPrefix) {
		return "", fmt.Errorf("%w: agent id must start with %q", ErrEncoding, AgentIDPrefix)
	}
	raw, err := base58.Decode(strings.TrimPrefix(s, AgentIDPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if len(raw) != blake2b.Size256 {
		return "", fmt.Errorf("%w: agent id hash must be %d bytes, got %d", ErrLengthMismatch, blake2b.Size256, len(raw))
	}
	return AgentID(s), nil
}

func (id AgentID) String() string { return string(id) }

// AsBytes implements [Field].
func (id AgentID) AsBytes() []byte { return []byte(id) }

// AgentKey is an ed25519 signing identity. The private half is wiped by
// Destroy; callers that hold an AgentKey are responsible for destroying it.
type AgentKey struct {
	priv *Secret
	pub  ed25519.PublicKey
}

// GenerateAgentKey creates a new key from r, or from crypto/rand when r is
// nil.
func GenerateAgentKey(r io.Reader) (*AgentKey, error) {
	if r == nil {
		r = rand.Reader
	}
	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, fmt.Errorf("read agent key seed: %w", err)
	}
	defer wipe(seed)
	return AgentKeyFromSeed(seed)
}

// AgentKeyFromSeed rebuilds a key from its 32-byte seed. seed is copied.
func AgentKeyFromSeed(seed []byte) (*AgentKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrLengthMismatch, ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pub, priv[ed25519.SeedSize:])
	return &AgentKey{priv: NewSecret(priv), pub: pub}, nil
}

// ID returns the agent identifier derived from the public key.
func (k *AgentKey) ID() AgentID {
	return NewAgentID(k.pub)
}

// PublicKey returns a copy of the ed25519 public key.
func (k *AgentKey) PublicKey() ed25519.PublicKey {
	out := make(ed25519.PublicKey, len(k.pub))
	copy(out, k.pub)
	return out
}

// PubKey returns the public key in wire form.
func (k *AgentKey) PubKey() models.Key32 {
	var out models.Key32
	copy(out[:], k.pub)
	return out
}

// Seed returns a copy of the 32-byte private seed. The caller owns the copy
// and must wipe it.
func (k *AgentKey) Seed() ([]byte, error) {
	priv := k.priv.Bytes()
	if len(priv) != ed25519.PrivateKeySize {
		return nil, ErrSecretDestroyed
	}
	out := make([]byte, ed25519.SeedSize)
	copy(out, priv[:ed25519.SeedSize])
	return out, nil
}

// Equal compares both halves of two keys in constant time.
func (k *AgentKey) Equal(other *AgentKey) bool {
	if k == nil || other == nil {
		return false
	}
	a, b := k.priv.Bytes(), other.priv.Bytes()
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1 && subtle.ConstantTimeCompare(k.pub, other.pub) == 1
}

// Destroyed reports whether the private half was wiped.
func (k *AgentKey) Destroyed() bool {
	return k.priv.Len() == 0
}

// Destroy wipes the private key. The public half stays readable.
func (k *AgentKey) Destroy() {
	if k == nil {
		return
	}
	k.priv.Destroy()
}

func (k *AgentKey) privateKey() (ed25519.PrivateKey, error) {
	priv := k.priv.Bytes()
	if len(priv) != ed25519.PrivateKeySize {
		return nil, ErrSecretDestroyed
	}
	return ed25519.PrivateKey(priv), nil
}
