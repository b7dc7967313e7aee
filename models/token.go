package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed session JWT.
//
// The subject claim holds the account id; the jti claim is a random uuid so
// two sessions issued in the same second are still distinct.
type Token struct {
	// Token is the parsed or freshly built JWT.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent as the bearer token.
	SignedString string `json:"-"`

	// AccountID is a cached copy of the subject claim.
	AccountID string `json:"-"`
}

// GetAccountID returns the subject claim.
func (t *Token) GetAccountID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject")
	}
	return sub, nil
}

// Session converts t into the wire [Session].
func (t *Token) Session() Session {
	s := Session{AccountID: t.AccountID, Token: t.SignedString}
	if t.ExpiresAt != nil {
		s.ExpiresAt = t.ExpiresAt.Time
	}
	return s
}

// String returns the compact JWS form.
func (t *Token) String() string {
	return t.SignedString
}
