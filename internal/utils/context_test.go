// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSessionTokenFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{"present", context.WithValue(context.Background(), SessionTokenCtxKey, "tok"), "tok", true},
		{"missing", context.Background(), "", false},
		{"empty", context.WithValue(context.Background(), SessionTokenCtxKey, ""), "", false},
		{"wrong type", context.WithValue(context.Background(), SessionTokenCtxKey, 42), "", false},
		// a plain string key must not collide with the typed key
		{"string key", context.WithValue(context.Background(), "sessionToken", "tok"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetSessionTokenFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "sessionToken", SessionTokenCtxKey.String())
}
