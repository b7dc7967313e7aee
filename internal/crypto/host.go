package crypto

import (
	"errors"
	"fmt"
)

// hostKinds is ordered: the first matching kind names the error.
var hostKinds = []struct {
	err  error
	name string
}{
	{ErrMac, "mac"},
	{ErrSignature, "signature"},
	{ErrInvalidReferent, "invalid_referent"},
	{ErrLengthMismatch, "length_mismatch"},
	{ErrEncoding, "encoding"},
	{ErrSerialization, "serialization"},
	{ErrStore, "store"},
	{ErrFieldCount, "field_count"},
	{ErrInvalidKDFParams, "kdf_params"},
	{ErrSecretDestroyed, "secret_destroyed"},
}

// Kind returns a stable short name for err's category, or "unknown".
func Kind(err error) string {
	for _, k := range hostKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}

// HostError renders err for a host environment that only carries strings
// (an FFI boundary, a CLI exit message). Nil renders as "".
func HostError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("keyplace %s: %v", Kind(err), err)
}

// IOError converts err into a generic I/O error for hosts that expect one.
// The original error stays reachable through [errors.Is].
func IOError(err error) error {
	if err == nil {
		return nil
	}
	return &HostIOError{Kind: Kind(err), Err: err}
}

// HostIOError is the error returned by IOError.
type HostIOError struct {
	Kind string
	Err  error
}

func (e *HostIOError) Error() string { return "keyplace " + e.Kind + ": " + e.Err.Error() }

func (e *HostIOError) Unwrap() error { return e.Err }
