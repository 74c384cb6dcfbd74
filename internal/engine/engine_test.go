package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thuli-tech/style-backend/internal/cfg"
	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/index"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

func writeTestArtifacts(t *testing.T, dir string, vectors [][]float32) (string, string) {
	t.Helper()

	indexPath := filepath.Join(dir, "inventory.index")
	metadataPath := filepath.Join(dir, "inventory_metadata.json")

	flat, err := index.NewFlat(len(vectors[0]))
	require.NoError(t, err)
	require.NoError(t, flat.Add(vectors...))

	items := make([]domain.IndexedItem, 0, len(vectors))
	for i := range vectors {
		items = append(items, domain.NewIndexedItem(
			string(rune('a'+i)),
			"http://img/"+string(rune('a'+i))+".jpg",
			domain.DefaultAttrs(),
		))
	}

	require.NoError(t, index.WriteArtifacts(indexPath, metadataPath, flat, items))
	return indexPath, metadataPath
}

func testCfg(indexPath, metadataPath string, dim int) *cfg.EngineCfg {
	return &cfg.EngineCfg{
		IndexPath:    indexPath,
		MetadataPath: metadataPath,
		VectorSize:   dim,
		InitAttempts: 2,
		InitDelay:    time.Millisecond,
	}
}

func TestEngineInit(t *testing.T) {
	t.Run("loads artifacts and becomes idempotent", func(t *testing.T) {
		indexPath, metadataPath := writeTestArtifacts(t, t.TempDir(), [][]float32{
			{0, 0}, {3, 4},
		})

		en := New(testCfg(indexPath, metadataPath, 2), logger.NewSlogLogger())
		require.NoError(t, en.Init(context.Background()))
		assert.True(t, en.Loaded())

		require.NoError(t, en.Init(context.Background()))
	})

	t.Run("missing artifacts fail after bounded retries", func(t *testing.T) {
		dir := t.TempDir()
		en := New(testCfg(filepath.Join(dir, "missing.index"), filepath.Join(dir, "missing.json"), 2), logger.NewSlogLogger())

		err := en.Init(context.Background())
		require.ErrorIs(t, err, e.ErrEngineNotLoaded)
		assert.False(t, en.Loaded())
	})

	t.Run("dimension mismatch with config", func(t *testing.T) {
		indexPath, metadataPath := writeTestArtifacts(t, t.TempDir(), [][]float32{
			{0, 0, 0},
		})

		en := New(testCfg(indexPath, metadataPath, 2), logger.NewSlogLogger())
		err := en.Init(context.Background())
		assert.ErrorIs(t, err, e.ErrDimensionMismatch)
	})
}

func TestEngineSearch(t *testing.T) {
	indexPath, metadataPath := writeTestArtifacts(t, t.TempDir(), [][]float32{
		{0, 0}, {3, 4}, {1, 0},
	})

	en := New(testCfg(indexPath, metadataPath, 2), logger.NewSlogLogger())

	t.Run("before init", func(t *testing.T) {
		_, err := en.Search([]float32{0, 0}, 2)
		assert.ErrorIs(t, err, e.ErrEngineNotLoaded)
	})

	require.NoError(t, en.Init(context.Background()))

	t.Run("returns candidates paired with metadata", func(t *testing.T) {
		candidates, err := en.Search([]float32{0, 0}, 2)
		require.NoError(t, err)
		require.Len(t, candidates, 2)

		assert.Equal(t, "a", candidates[0].Item.ID)
		assert.Equal(t, "c", candidates[1].Item.ID)
		assert.LessOrEqual(t, candidates[0].Distance, candidates[1].Distance)
	})
}

func TestEngineDefault(t *testing.T) {
	indexPath, metadataPath := writeTestArtifacts(t, t.TempDir(), [][]float32{
		{0, 0}, {3, 4}, {1, 0},
	})

	en := New(testCfg(indexPath, metadataPath, 2), logger.NewSlogLogger())

	t.Run("before init", func(t *testing.T) {
		_, err := en.Default(2)
		assert.ErrorIs(t, err, e.ErrEngineNotLoaded)
	})

	require.NoError(t, en.Init(context.Background()))

	t.Run("returns first n in storage order", func(t *testing.T) {
		items, err := en.Default(2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "a", items[0].ID)
		assert.Equal(t, "b", items[1].ID)
	})

	t.Run("n beyond metadata is clamped", func(t *testing.T) {
		items, err := en.Default(10)
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})
}
