// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of custodian requests before the
// service touches the store.
//
// [NewCustodianValidator] covers account ids, labels (present, unique within
// a batch) and batch size limits. Key material is only checked for being
// set; whether it is correct is the service's business.
package validators

import "context"

// Validator checks one request value. fields, when given, limits the check
// to the named parts of it.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
