package pipeline

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/pkg/e"
)

const testLabels = `{
  "categories": [
    {"id": 1, "name": "shirt"},
    {"id": 2, "name": "jeans"}
  ],
  "attributes": [
    {"id": 10, "name": "main-color-red"},
    {"id": 11, "name": "silhouette-fit-slim"},
    {"id": 12, "name": "textile-pattern-floral"}
  ]
}`

const testAnnotations = `ImageId,ClassId,AttributesIds
img1,1,"10,11"
img1,2,
img2,2,12
`

func writeDatasetFiles(t *testing.T) (string, string, string) {
	t.Helper()

	dir := t.TempDir()
	annotations := filepath.Join(dir, "train.csv")
	labels := filepath.Join(dir, "label_descriptions.json")

	require.NoError(t, os.WriteFile(annotations, []byte(testAnnotations), 0o644))
	require.NoError(t, os.WriteFile(labels, []byte(testLabels), 0o644))

	return annotations, labels, dir
}

func TestLoadDataset(t *testing.T) {
	annotations, labels, imageDir := writeDatasetFiles(t)

	items, err := LoadDataset(annotations, labels, imageDir, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, items, 2)

	byID := make(map[string]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	img1, ok := byID["img1"]
	require.True(t, ok)
	assert.Equal(t, filepath.Join(imageDir, "img1.jpg"), img1.LocalPath)
	// Строки одного изображения агрегируются: категории обеих строк и все атрибуты.
	assert.Equal(t, "shirt", img1.Attrs.Type)
	assert.Equal(t, "red", img1.Attrs.PrimaryColor)
	assert.Equal(t, "slim", img1.Attrs.Fit)

	img2, ok := byID["img2"]
	require.True(t, ok)
	assert.Equal(t, "pant", img2.Attrs.Type)
	assert.Equal(t, "floral", img2.Attrs.Pattern)
}

func TestLoadDatasetShuffleIsSeeded(t *testing.T) {
	annotations, labels, imageDir := writeDatasetFiles(t)

	first, err := LoadDataset(annotations, labels, imageDir, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := LoadDataset(annotations, labels, imageDir, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoadDatasetMissingColumn(t *testing.T) {
	dir := t.TempDir()
	annotations := filepath.Join(dir, "bad.csv")
	labels := filepath.Join(dir, "labels.json")
	require.NoError(t, os.WriteFile(annotations, []byte("ImageId,ClassId\nimg1,1\n"), 0o644))
	require.NoError(t, os.WriteFile(labels, []byte(testLabels), 0o644))

	_, err := LoadDataset(annotations, labels, dir, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestApplyPriceList(t *testing.T) {
	writePrices := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "prices.csv")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("applies brand and price by item id", func(t *testing.T) {
		items := []Item{
			{ID: "img1", Attrs: domain.DefaultAttrs()},
			{ID: "img2", Attrs: domain.DefaultAttrs()},
		}

		path := writePrices(t, "name,brand,price\nimg1,Acme,49.99\n")
		require.NoError(t, ApplyPriceList(items, path))

		assert.Equal(t, "Acme", items[0].Attrs.Brand)
		assert.Equal(t, 49.99, items[0].Attrs.Price)
		// Предметы без строки прайс-листа не меняются.
		assert.Equal(t, domain.PlaceholderBrand, items[1].Attrs.Brand)
		assert.Equal(t, domain.PlaceholderPrice, items[1].Attrs.Price)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		path := writePrices(t, "img1,Acme,-5\n")
		err := ApplyPriceList([]Item{{ID: "img1"}}, path)
		assert.ErrorIs(t, err, e.ErrInvalidPrice)
	})

	t.Run("rejects more than two decimal places", func(t *testing.T) {
		path := writePrices(t, "img1,Acme,9.999\n")
		err := ApplyPriceList([]Item{{ID: "img1"}}, path)
		assert.ErrorIs(t, err, e.ErrPricePrecision)
	})
}
