package mapbuilder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hypermap/internal/domain/tile"
)

type MapStore interface {
	Save(ctx context.Context, m tile.Map) error
	Target() string
}

type MapUseCase struct {
	store MapStore
	log   *zap.SugaredLogger
}

func NewMapUseCase(store MapStore, log *zap.SugaredLogger) *MapUseCase {
	return &MapUseCase{store: store, log: log}
}

// Generate builds the canonical map, checks it and writes it once through the
// store. There is no retry: the first store error is returned.
func (u *MapUseCase) Generate(ctx context.Context) error {
	m := Build()
	u.log.Debugw("map built", "nodes", len(m))

	if err := Validate(m); err != nil {
		return err
	}

	if err := u.store.Save(ctx, m); err != nil {
		return fmt.Errorf("failed to save map to %s: %w", u.store.Target(), err)
	}

	u.log.Infow("JSON map has been saved.", "target", u.store.Target(), "nodes", len(m))
	return nil
}
