package utils

import "github.com/google/uuid"

// NewTimeOrderedID returns a uuid v7 string. Session jti claims and trace
// ids use it so they sort by creation time in logs. A failed clock read
// falls back to a random v4.
func NewTimeOrderedID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
