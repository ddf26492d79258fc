package mapbuilder

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"hypermap/internal/domain/tile"
	errs "hypermap/internal/errors"
)

type memoryStore struct {
	saved []tile.Map
	err   error
}

func (s *memoryStore) Save(_ context.Context, m tile.Map) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, m)
	return nil
}

func (s *memoryStore) Target() string {
	return "memory"
}

func TestGenerate_SavesCanonicalMapOnce(t *testing.T) {
	store := &memoryStore{}
	uc := NewMapUseCase(store, zaptest.NewLogger(t).Sugar())

	require.NoError(t, uc.Generate(context.Background()))

	require.Len(t, store.saved, 1)
	assert.Equal(t, Build(), store.saved[0])
}

func TestGenerate_StoreFailure(t *testing.T) {
	cause := errors.New("disk full")
	store := &memoryStore{err: errors.Join(errs.ErrWriteFailed, cause)}
	uc := NewMapUseCase(store, zaptest.NewLogger(t).Sugar())

	err := uc.Generate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrWriteFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "memory")
}
