package usecase

import (
	"math/rand"
	"sync"
	"time"

	"github.com/thuli-tech/style-backend/internal/domain"
)

// Палитры сюрреалистичных значений, подменяющих заглушки каталога в выдаче.
// Косметика презентационного слоя; на ранжирование не влияет.
var (
	fillerColors = []string{"moonlit lavender", "electric tangerine", "liquid silver", "velvet crimson", "fogged jade"}
	fillerFits   = []string{"cloudlike", "featherweight", "gravity-defying", "second-skin", "billowing"}
	fillerBrands = []string{"Maison Reverie", "Velvet Thunder", "Atelier Lune", "Paper Crane Co.", "Neon Meridian"}
	fillerPrices = []float64{19.99, 34.50, 49.99, 72.00, 120.00}
)

// Filler подменяет значения-заглушки случайными значениями из палитр.
// Источник случайности инъецируется, чтобы выдачу можно было тестировать.
type Filler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewFiller(rnd *rand.Rand) *Filler {
	return &Filler{rnd: rnd}
}

func NewDefaultFiller() *Filler {
	return NewFiller(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Apply возвращает рекомендацию, в которой каждая заглушка заменена случайным
// значением палитры. Незаглушечные значения проходят без изменений.
func (f *Filler) Apply(rec domain.Recommendation) domain.Recommendation {
	if rec.PrimaryColor == domain.PlaceholderColor || rec.PrimaryColor == "" {
		rec.PrimaryColor = fillerColors[f.pick(len(fillerColors))]
	}
	if rec.Fit == domain.PlaceholderFit || rec.Fit == "" {
		rec.Fit = fillerFits[f.pick(len(fillerFits))]
	}
	if rec.Brand == domain.PlaceholderBrand || rec.Brand == "" {
		rec.Brand = fillerBrands[f.pick(len(fillerBrands))]
	}
	if rec.Price == domain.PlaceholderPrice {
		rec.Price = fillerPrices[f.pick(len(fillerPrices))]
	}

	return rec
}

func (f *Filler) pick(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rnd.Intn(n)
}
