package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-keyplace/models"
)

// Field names accepted by [CustodianValidator.Validate].
const (
	FieldAccountID    = "account_id"
	FieldName         = "name"
	FieldKeys         = "keys"
	FieldUniqueLabels = "unique_labels"
	FieldQuery        = "query"
	FieldAttempts     = "attempts"
)

// Request size limits.
const (
	MaxAccountIDLength = 256
	MaxNameLength      = 256
	MaxLabelLength     = 128
	MaxKeysPerRequest  = 256
	MaxRecoverAttempts = 256
)

type CustodianValidator struct{}

func NewCustodianValidator() Validator {
	return &CustodianValidator{}
}

func (v *CustodianValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.AuthRequest:
		return v.validateAuthRequest(ctx, value, fields...)
	case *models.AuthRequest:
		return v.validateAuthRequest(ctx, *value, fields...)

	case models.SetKeysRequest:
		return v.validateSetKeysRequest(ctx, value, fields...)
	case *models.SetKeysRequest:
		return v.validateSetKeysRequest(ctx, *value, fields...)

	case models.RecoverRequest:
		return v.validateRecoverRequest(ctx, value, fields...)
	case *models.RecoverRequest:
		return v.validateRecoverRequest(ctx, *value, fields...)

	case models.KeyRecord:
		return validateKeyRecord(value)
	case *models.KeyRecord:
		return validateKeyRecord(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *CustodianValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID, FieldName, FieldKeys, FieldUniqueLabels}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if err := validateAccountID(req.AccountID); err != nil {
				return err
			}
		case FieldName:
			if len(req.Name) > MaxNameLength || !utf8.ValidString(req.Name) {
				return ErrInvalidName
			}
		case FieldKeys:
			if err := validateKeyRecords(req.Keys); err != nil {
				return err
			}
		case FieldUniqueLabels:
			if err := uniqueLabels(req.Keys); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CustodianValidator) validateAuthRequest(_ context.Context, req models.AuthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID, FieldQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if err := validateAccountID(req.AccountID); err != nil {
				return err
			}
		case FieldQuery:
			if err := validateLabel(req.Query.Label); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// The signature is parsed by the transport before it gets here.
func (v *CustodianValidator) validateSetKeysRequest(_ context.Context, req models.SetKeysRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeys, FieldUniqueLabels}
	}

	for _, f := range fields {
		switch f {
		case FieldKeys:
			if err := validateKeyRecords(req.Keys); err != nil {
				return err
			}
		case FieldUniqueLabels:
			if err := uniqueLabels(req.Keys); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// An empty attempt list is valid: it simply matches nothing.
func (v *CustodianValidator) validateRecoverRequest(_ context.Context, req models.RecoverRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAccountID, FieldAttempts}
	}

	for _, f := range fields {
		switch f {
		case FieldAccountID:
			if err := validateAccountID(req.AccountID); err != nil {
				return err
			}
		case FieldAttempts:
			if len(req.Attempts) > MaxRecoverAttempts {
				return ErrTooManyAttempts
			}
			for i, a := range req.Attempts {
				if err := validateLabel(a.Label); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateAccountID(id string) error {
	if strings.TrimSpace(id) == "" || len(id) > MaxAccountIDLength || !utf8.ValidString(id) {
		return ErrInvalidAccountID
	}
	return nil
}

func validateLabel(label string) error {
	if strings.TrimSpace(label) == "" || len(label) > MaxLabelLength || !utf8.ValidString(label) {
		return ErrInvalidLabel
	}
	return nil
}

func validateKeyRecords(records []models.KeyRecord) error {
	if len(records) == 0 {
		return ErrEmptyKeyList
	}
	if len(records) > MaxKeysPerRequest {
		return ErrTooManyKeys
	}
	for i, rec := range records {
		if err := validateKeyRecord(rec); err != nil {
			return fmt.Errorf("validation error at index %d: %w", i, err)
		}
	}
	return nil
}

func validateKeyRecord(rec models.KeyRecord) error {
	if err := validateLabel(rec.Label); err != nil {
		return err
	}
	if rec.CustodialKey.PubKey.IsZero() {
		return ErrEmptyPubKey
	}
	if rec.CustodialKey.Email != nil {
		if _, err := mail.ParseAddress(*rec.CustodialKey.Email); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
		}
	}
	return nil
}

func uniqueLabels(records []models.KeyRecord) error {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.Label]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, rec.Label)
		}
		seen[rec.Label] = struct{}{}
	}
	return nil
}
