// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-keyplace/internal/crypto"
	"github.com/MKhiriev/go-keyplace/internal/logger"
)

// Deriver is the errgroup backed [BatchDeriver].
type Deriver struct {
	kdf    crypto.Deriver
	limit  int
	logger *logger.Logger
}

// NewDeriver returns a pool running at most concurrency derivations at a
// time. concurrency <= 0 means runtime.NumCPU().
func NewDeriver(kdf crypto.Deriver, concurrency int, log *logger.Logger) *Deriver {
	if concurrency <= 0 {
		concurrency = runtime.NumCPU()
	}
	return &Deriver{kdf: kdf, limit: concurrency, logger: log}
}

func (d *Deriver) DeriveAll(ctx context.Context, passphrases []*crypto.Secret) ([]*crypto.PassKey, error) {
	keys := make([]*crypto.PassKey, len(passphrases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.limit)

	for i, p := range passphrases {
		// g.Go blocks while the pool is full; stop scheduling once cancelled
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pk, err := d.kdf.Derive(p)
			if err != nil {
				return fmt.Errorf("derive passphrase %d: %w", i, err)
			}
			keys[i] = pk
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		destroyAll(keys)
		d.logger.Debug().Err(err).
			Int("passphrases", len(passphrases)).
			Msg("batch derivation aborted")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	return keys, nil
}

func destroyAll(keys []*crypto.PassKey) {
	for _, k := range keys {
		if k != nil {
			k.Destroy()
		}
	}
}
