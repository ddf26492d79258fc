package repo

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"hypermap/internal/domain/tile"
	errs "hypermap/internal/errors"
	"hypermap/internal/utils"
)

type FileMapStore struct {
	path string
	log  *zap.SugaredLogger
}

func NewFileMapStore(path string, log *zap.SugaredLogger) *FileMapStore {
	return &FileMapStore{path: path, log: log}
}

func (f *FileMapStore) Target() string {
	return f.path
}

// Save creates or truncates the file and writes the encoded map to it.
func (f *FileMapStore) Save(ctx context.Context, m tile.Map) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrWriteFailed, err)
	}

	data, err := utils.EncodeMap(m)
	if err != nil {
		return err
	}

	if err = os.WriteFile(f.path, data, 0644); err != nil {
		f.log.Debugw("An error occurred while writing JSON Object to File", "path", f.path, "error", err)
		return fmt.Errorf("%w: %w", errs.ErrWriteFailed, err)
	}

	f.log.Debugw("map file written", "path", f.path, "bytes", len(data))
	return nil
}

func (f *FileMapStore) Load() (tile.Map, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrDecode, err)
	}
	defer file.Close()

	return utils.DecodeMap(file)
}
