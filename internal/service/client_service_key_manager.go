package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
	"github.com/MKhiriev/go-keyplace/internal/store"
	"github.com/MKhiriev/go-keyplace/models"
	"github.com/awnumar/memguard"
)

type keyManager struct {
	repo   store.LocalAgentKeyRepository
	sealer crypto.Sealer
	logger *logger.Logger
}

// NewKeyManager stores agent seeds in repo, sealed with sealer.
func NewKeyManager(repo store.LocalAgentKeyRepository, sealer crypto.Sealer, log *logger.Logger) KeyManager {
	return &keyManager{repo: repo, sealer: sealer, logger: log}
}

func (m *keyManager) Store(ctx context.Context, key *crypto.AgentKey) (crypto.AgentID, error) {
	seed, err := key.Seed()
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(seed)

	sealed, err := m.sealer.Seal(seed)
	if err != nil {
		return "", fmt.Errorf("%w: seal agent seed: %w", crypto.ErrSerialization, err)
	}

	id := key.ID()
	if err = m.repo.SaveAgentKey(ctx, models.LocalAgentKey{ID: id.String(), PubKey: key.PubKey(), SealedSeed: sealed}); err != nil {
		return "", fmt.Errorf("%w: %w", crypto.ErrStore, err)
	}

	logger.FromContext(ctx).Debug().Str("agent_id", id.String()).Msg("agent key stored")
	return id, nil
}

func (m *keyManager) WithKey(ctx context.Context, id crypto.AgentID, fn func(key *crypto.AgentKey) error) error {
	key, err := m.load(ctx, id)
	if err != nil {
		return err
	}
	defer key.Destroy()

	return fn(key)
}

func (m *keyManager) PublicKey(ctx context.Context, id crypto.AgentID) (models.Key32, error) {
	stored, err := m.find(ctx, id)
	if err != nil {
		return models.Key32{}, err
	}
	if crypto.NewAgentID(stored.PubKey.AsBytes()) != id {
		return models.Key32{}, fmt.Errorf("%w: stored public key does not match %s", crypto.ErrSerialization, id)
	}
	return stored.PubKey, nil
}

func (m *keyManager) Delete(ctx context.Context, id crypto.AgentID) error {
	err := m.repo.DeleteAgentKey(ctx, id.String())
	if errors.Is(err, store.ErrAgentKeyNotFound) {
		return fmt.Errorf("%w: %s", crypto.ErrInvalidReferent, id)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", crypto.ErrStore, err)
	}
	return nil
}

func (m *keyManager) List(ctx context.Context) ([]crypto.AgentID, error) {
	keys, err := m.repo.ListAgentKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrStore, err)
	}

	ids := make([]crypto.AgentID, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, crypto.AgentID(k.ID))
	}
	return ids, nil
}

func (m *keyManager) find(ctx context.Context, id crypto.AgentID) (models.LocalAgentKey, error) {
	stored, err := m.repo.FindAgentKey(ctx, id.String())
	switch {
	case errors.Is(err, store.ErrAgentKeyNotFound):
		return stored, fmt.Errorf("%w: %s", crypto.ErrInvalidReferent, id)
	case errors.Is(err, store.ErrCorruptRow):
		return stored, fmt.Errorf("%w: %w", crypto.ErrSerialization, err)
	case err != nil:
		return stored, fmt.Errorf("%w: %w", crypto.ErrStore, err)
	}
	return stored, nil
}

func (m *keyManager) load(ctx context.Context, id crypto.AgentID) (*crypto.AgentKey, error) {
	stored, err := m.find(ctx, id)
	if err != nil {
		return nil, err
	}

	seed, err := m.sealer.Open(stored.SealedSeed)
	if err != nil {
		if errors.Is(err, crypto.ErrMac) || errors.Is(err, crypto.ErrSerialization) || errors.Is(err, crypto.ErrSecretDestroyed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", crypto.ErrSerialization, err)
	}
	defer memguard.WipeBytes(seed)

	key, err := crypto.AgentKeyFromSeed(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrSerialization, err)
	}

	pub := key.PubKey()
	if subtle.ConstantTimeCompare(pub[:], stored.PubKey[:]) != 1 || key.ID() != id {
		key.Destroy()
		return nil, fmt.Errorf("%w: stored public key does not match seed", crypto.ErrSerialization)
	}
	return key, nil
}
