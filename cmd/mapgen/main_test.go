package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"

	"hypermap/internal/bootstrap"
	errs "hypermap/internal/errors"
	"hypermap/internal/usecase/mapbuilder"
	"hypermap/internal/utils"
)

func fileConfig(path string) bootstrap.Config {
	return bootstrap.Config{OutputSink: bootstrap.SinkFile, OutputPath: path, LogLevel: "info"}
}

func TestGenerate_WritesMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")

	err := generate(context.Background(), fileConfig(path), zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	require.FileExists(t, path)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed []struct {
		Neighbors []int `json:"neighbors"`
		State     int   `json:"state"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))

	require.Len(t, parsed, 21)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, parsed[0].Neighbors)
	assert.Equal(t, []int{1, 5, -1, -1, -1}, parsed[6].Neighbors)
	assert.Equal(t, []int{1, -1, -1, -1, -1}, parsed[7].Neighbors)
	for id, node := range parsed {
		assert.Len(t, node.Neighbors, 5, "node %d", id)
		assert.True(t, node.State >= 0 && node.State <= 4, "node %d", id)
	}
}

func TestGenerate_RoundTripAndIdempotence(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	log := zaptest.NewLogger(t).Sugar()

	require.NoError(t, generate(context.Background(), fileConfig(first), log))
	require.NoError(t, generate(context.Background(), fileConfig(second), log))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	f, err := os.Open(first)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := utils.DecodeMap(f)
	require.NoError(t, err)
	assert.Equal(t, mapbuilder.Build(), decoded)
}

func TestGenerate_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "map.json")

	err := generate(context.Background(), fileConfig(path), zaptest.NewLogger(t).Sugar())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrWriteFailed)
	assert.NoFileExists(t, path)
}

func TestGenerate_UnknownSink(t *testing.T) {
	cfg := bootstrap.Config{OutputSink: "ftp"}

	err := generate(context.Background(), cfg, zaptest.NewLogger(t).Sugar())
	assert.ErrorIs(t, err, errs.ErrUnknownSink)
}

func TestGenerate_RedisSink(t *testing.T) {
	srv := miniredis.RunT(t)
	cfg := bootstrap.Config{OutputSink: bootstrap.SinkRedis, RedisUrl: srv.Addr(), RedisKey: "hypermap:5square"}

	require.NoError(t, generate(context.Background(), cfg, zaptest.NewLogger(t).Sugar()))

	want, err := utils.EncodeMap(mapbuilder.Build())
	require.NoError(t, err)
	srv.CheckGet(t, "hypermap:5square", string(want))
}

func TestNewLogger_Level(t *testing.T) {
	assert.True(t, NewLogger("debug").Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.False(t, NewLogger("warn").Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, NewLogger("nonsense").Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.False(t, NewLogger("nonsense").Desugar().Core().Enabled(zapcore.DebugLevel))
}
