package index

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/pkg/e"
)

func TestNewFlat(t *testing.T) {
	tests := []struct {
		name    string
		dim     int
		wantErr bool
	}{
		{name: "valid dimension", dim: 4},
		{name: "zero dimension", dim: 0, wantErr: true},
		{name: "negative dimension", dim: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat, err := NewFlat(tt.dim)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dim, flat.Dim())
			assert.Equal(t, 0, flat.Len())
		})
	}
}

func TestFlatAdd(t *testing.T) {
	flat, err := NewFlat(2)
	require.NoError(t, err)

	require.NoError(t, flat.Add([]float32{1, 2}, []float32{3, 4}))
	assert.Equal(t, 2, flat.Len())

	err = flat.Add([]float32{1, 2, 3})
	require.ErrorIs(t, err, e.ErrDimensionMismatch)
	// Батч с невалидным вектором не применяется даже частично.
	assert.Equal(t, 2, flat.Len())
}

func TestFlatSearch(t *testing.T) {
	flat, err := NewFlat(2)
	require.NoError(t, err)
	require.NoError(t, flat.Add(
		[]float32{0, 0},
		[]float32{3, 4},
		[]float32{1, 0},
	))

	t.Run("orders by distance", func(t *testing.T) {
		hits, err := flat.Search([]float32{0, 0}, 3)
		require.NoError(t, err)
		require.Len(t, hits, 3)

		assert.Equal(t, 0, hits[0].Pos)
		assert.Equal(t, 2, hits[1].Pos)
		assert.Equal(t, 1, hits[2].Pos)
		assert.InDelta(t, 0.0, hits[0].Distance, 1e-6)
		assert.InDelta(t, 1.0, hits[1].Distance, 1e-6)
		assert.InDelta(t, 5.0, hits[2].Distance, 1e-6)
	})

	t.Run("k larger than index returns all", func(t *testing.T) {
		hits, err := flat.Search([]float32{0, 0}, 10)
		require.NoError(t, err)
		assert.Len(t, hits, 3)
	})

	t.Run("k zero returns nothing", func(t *testing.T) {
		hits, err := flat.Search([]float32{0, 0}, 0)
		require.NoError(t, err)
		assert.Empty(t, hits)
	})

	t.Run("query dimension mismatch", func(t *testing.T) {
		_, err := flat.Search([]float32{0, 0, 0}, 1)
		assert.ErrorIs(t, err, e.ErrDimensionMismatch)
	})

	t.Run("empty index", func(t *testing.T) {
		empty, err := NewFlat(2)
		require.NoError(t, err)
		_, err = empty.Search([]float32{0, 0}, 1)
		assert.ErrorIs(t, err, e.ErrEmptyIndex)
	})
}

func TestFlatSearchStableTies(t *testing.T) {
	flat, err := NewFlat(1)
	require.NoError(t, err)
	// Все три вектора равноудалены от запроса.
	require.NoError(t, flat.Add([]float32{1}, []float32{-1}, []float32{1}))

	hits, err := flat.Search([]float32{0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	// Равные расстояния сохраняют порядок вставки.
	assert.Equal(t, []int{0, 1, 2}, []int{hits[0].Pos, hits[1].Pos, hits[2].Pos})
}

func TestCodecRoundTrip(t *testing.T) {
	flat, err := NewFlat(3)
	require.NoError(t, err)
	require.NoError(t, flat.Add(
		[]float32{0.1, 0.2, 0.3},
		[]float32{-1, 0, 1},
	))

	var buf bytes.Buffer
	require.NoError(t, flat.Write(&buf))

	got, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, flat.Dim(), got.Dim())
	assert.Equal(t, flat.Len(), got.Len())
	for pos := 0; pos < flat.Len(); pos++ {
		want, err := flat.Vector(pos)
		require.NoError(t, err)
		vec, err := got.Vector(pos)
		require.NoError(t, err)
		assert.Equal(t, want, vec)
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	_, err := Read(bytes.NewBufferString("nope, not an index"))
	assert.Error(t, err)
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	indexPath := filepath.Join(dir, "inventory.index")
	metadataPath := filepath.Join(dir, "inventory_metadata.json")

	flat, err := NewFlat(2)
	require.NoError(t, err)
	require.NoError(t, flat.Add([]float32{1, 2}, []float32{3, 4}))

	items := []domain.IndexedItem{
		domain.NewIndexedItem("a", "http://img/a.jpg", domain.DefaultAttrs()),
		domain.NewIndexedItem("b", "http://img/b.jpg", domain.Attrs{
			PrimaryColor: "red",
			Fit:          "slim",
			Pattern:      "striped",
			Type:         "shirt",
			Brand:        "Acme",
			Price:        49.99,
		}),
	}

	t.Run("round trip preserves the pair", func(t *testing.T) {
		require.NoError(t, WriteArtifacts(indexPath, metadataPath, flat, items))

		gotFlat, gotItems, err := ReadArtifacts(indexPath, metadataPath)
		require.NoError(t, err)

		assert.Equal(t, flat.Len(), gotFlat.Len())
		assert.Equal(t, flat.Dim(), gotFlat.Dim())
		assert.Equal(t, items, gotItems)
	})

	t.Run("length mismatch is rejected", func(t *testing.T) {
		err := WriteArtifacts(indexPath, metadataPath, flat, items[:1])
		assert.ErrorIs(t, err, e.ErrIndexMetadataLength)
	})

	t.Run("empty pair is rejected", func(t *testing.T) {
		empty, err := NewFlat(2)
		require.NoError(t, err)
		err = WriteArtifacts(indexPath, metadataPath, empty, nil)
		assert.ErrorIs(t, err, e.ErrEmptyIndex)
	})
}
