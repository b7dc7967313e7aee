package store

import (
	"context"

	"github.com/MKhiriev/go-keyplace/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalAgentKeyRepository is the client-side store of sealed agent keys.
type LocalAgentKeyRepository interface {
	// SaveAgentKey inserts or replaces the key stored under key.ID.
	SaveAgentKey(ctx context.Context, key models.LocalAgentKey) error

	// FindAgentKey returns ErrAgentKeyNotFound for an unknown id.
	FindAgentKey(ctx context.Context, agentID string) (models.LocalAgentKey, error)

	// ListAgentKeys returns all stored keys, oldest first.
	ListAgentKeys(ctx context.Context) ([]models.LocalAgentKey, error)

	// DeleteAgentKey returns ErrAgentKeyNotFound for an unknown id.
	DeleteAgentKey(ctx context.Context, agentID string) error
}
