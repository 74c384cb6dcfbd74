package usecase

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thuli-tech/style-backend/internal/domain"
)

func TestFillerReplacesPlaceholders(t *testing.T) {
	filler := NewFiller(rand.New(rand.NewSource(7)))

	rec := filler.Apply(domain.Recommendation{
		ID:           "a",
		Name:         "item a",
		Image:        "http://img/a.jpg",
		PrimaryColor: domain.PlaceholderColor,
		Fit:          "",
		Brand:        domain.PlaceholderBrand,
		Price:        domain.PlaceholderPrice,
	})

	assert.Contains(t, fillerColors, rec.PrimaryColor)
	assert.Contains(t, fillerFits, rec.Fit)
	assert.Contains(t, fillerBrands, rec.Brand)
	assert.Contains(t, fillerPrices, rec.Price)

	// Идентификация предмета не затрагивается.
	assert.Equal(t, "a", rec.ID)
	assert.Equal(t, "item a", rec.Name)
	assert.Equal(t, "http://img/a.jpg", rec.Image)
}

func TestFillerKeepsRealValues(t *testing.T) {
	filler := NewFiller(rand.New(rand.NewSource(7)))

	in := domain.Recommendation{
		ID:           "a",
		PrimaryColor: "red",
		Fit:          "slim",
		Brand:        "Acme",
		Price:        49.99,
	}

	assert.Equal(t, in, filler.Apply(in))
}
