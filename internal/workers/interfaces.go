// Package workers runs the expensive passphrase derivations of the client
// flows on a bounded pool.
//
// One recovery attempt derives a PassKey per question window or printed
// code, and each derivation is a memory-hard scrypt call. Running them
// one after another makes recovery needlessly slow; running all of them at
// once can exhaust memory. The pool sits in between.
package workers

import (
	"context"

	"github.com/MKhiriev/go-keyplace/internal/crypto"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// BatchDeriver derives one PassKey per passphrase.
type BatchDeriver interface {
	// DeriveAll returns keys in the order of passphrases. On error or
	// cancellation every key derived so far is destroyed and none is
	// returned.
	DeriveAll(ctx context.Context, passphrases []*crypto.Secret) ([]*crypto.PassKey, error)
}
