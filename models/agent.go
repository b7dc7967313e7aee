package models

import "time"

// LocalAgentKey is an agent key as kept by the client key store. The seed
// is sealed with the local vault key and never leaves the device.
type LocalAgentKey struct {
	ID         string    `json:"agent_id"`
	PubKey     Key32     `json:"pubkey"`
	SealedSeed []byte    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}
