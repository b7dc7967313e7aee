package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// Deriver turns a passphrase into a [PassKey]. [*KeyDerivation] is the
// production implementation; workers and client flows depend on this
// interface so tests can skip the scrypt cost.
type Deriver interface {
	Derive(passphrase *Secret) (*PassKey, error)
}

// Sealer protects agent seeds at rest. [*SeedVault] implements it.
type Sealer interface {
	// Seal encrypts plaintext into a self-contained blob.
	Seal(plaintext []byte) ([]byte, error)

	// Open reverses Seal. Authentication failures return ErrMac.
	Open(blob []byte) ([]byte, error)
}
