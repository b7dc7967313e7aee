package service

import "errors"

// Custodian contract errors. ErrNotFound is the only error authenticate and
// recover return for a credential problem, whatever the cause.
var (
	ErrNotFound             = errors.New("not found")
	ErrEmptyKeyList         = errors.New("key list is empty")
	ErrSessionInvalid       = errors.New("session is expired or invalid")
	ErrInvalidDataProvided  = errors.New("invalid data provided")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrRateLimited          = errors.New("rate limited")
	ErrTokenCreationFailed  = errors.New("session token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client flow errors.
var (
	// ErrNoKeyMatched is returned when no candidate PassKey unmasks the
	// custodial key the custodian returned.
	ErrNoKeyMatched = errors.New("no derived key matched the custodial key")

	ErrRegisterOnServer = errors.New("registration on custodian failed")
	ErrLoginOnServer    = errors.New("authentication on custodian failed")
	ErrRecoverOnServer  = errors.New("recovery on custodian failed")
	ErrSetKeysOnServer  = errors.New("key upload to custodian failed")

	// ErrNotEnoughQuestions is returned when fewer answers than one window
	// are supplied.
	ErrNotEnoughQuestions = errors.New("not enough recovery questions")

	// ErrInvalidRecoveryCode is returned for a printed code that is not a
	// valid mnemonic.
	ErrInvalidRecoveryCode = errors.New("invalid recovery code")
)
