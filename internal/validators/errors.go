package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidAccountID = errors.New("invalid account ID")
	ErrInvalidName      = errors.New("invalid account name")
	ErrInvalidLabel     = errors.New("invalid label")
	ErrDuplicateLabel   = errors.New("duplicate label")
	ErrEmptyKeyList     = errors.New("key list cannot be empty")
	ErrTooManyKeys      = errors.New("too many keys in one request")
	ErrTooManyAttempts  = errors.New("too many recovery attempts in one request")
	ErrEmptyPubKey      = errors.New("custodial key has an empty public key")
	ErrInvalidEmail     = errors.New("invalid email")
)
