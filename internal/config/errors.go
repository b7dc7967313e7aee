package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (unknown transport, missing address or timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing session or vault secrets.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a bad derivation concurrency.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidKDFConfigs indicates scrypt parameters scrypt would reject.
	ErrInvalidKDFConfigs = errors.New("invalid kdf configuration")
	// ErrInvalidServerConfigs indicates missing listeners or bad limits.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
