// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"sync"

	"github.com/awnumar/memguard"
)

// Secret owns a byte buffer holding secret material. Destroy overwrites the
// buffer; it is safe to call more than once and from several goroutines.
//
// Use [WithSecret] or a deferred Destroy right after construction so the
// buffer is wiped on every return path.
type Secret struct {
	mu  sync.Mutex
	buf []byte
}

// NewSecret takes ownership of b. The caller must not keep using b.
func NewSecret(b []byte) *Secret {
	if b == nil {
		b = []byte{}
	}
	return &Secret{buf: b}
}

// NewPassphrase copies passphrase into a new [Secret]. Go strings are
// immutable, so the original string can not be wiped; callers reading a
// passphrase from a terminal should prefer [NewSecret] on the raw bytes.
func NewPassphrase(passphrase string) *Secret {
	return NewSecret([]byte(passphrase))
}

// WithSecret wraps b in a [Secret], calls fn and wipes the buffer when fn
// returns, including when fn panics.
func WithSecret(b []byte, fn func(s *Secret) error) error {
	s := NewSecret(b)
	defer s.Destroy()
	return fn(s)
}

// Bytes returns the underlying buffer, or nil after Destroy. The returned
// slice aliases the secret and must not be retained.
func (s *Secret) Bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf
}

// Len returns the length of the secret, 0 after Destroy.
func (s *Secret) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buf)
}

// Destroyed reports whether Destroy has been called.
func (s *Secret) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf == nil
}

// Destroy wipes the buffer and releases it.
func (s *Secret) Destroy() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf != nil {
		memguard.WipeBytes(s.buf)
		s.buf = nil
	}
}

// wipe zeroes a scratch buffer that never left this package.
func wipe(b []byte) {
	memguard.WipeBytes(b)
}
