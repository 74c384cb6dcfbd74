package pipeline

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/thuli-tech/style-backend/internal/domain"
)

type rgb struct {
	r, g, b float64
}

type namedColor struct {
	ref  rgb
	name string
}

// namedColors — опорные цвета для поиска ближайшего по Евклидову расстоянию
// в RGB; порядок фиксирован, чтобы равные расстояния разрешались детерминированно.
var namedColors = []namedColor{
	{rgb{255, 0, 0}, "red"},
	{rgb{0, 255, 0}, "green"},
	{rgb{0, 0, 255}, "blue"},
	{rgb{255, 255, 0}, "yellow"},
	{rgb{0, 255, 255}, "cyan"},
	{rgb{255, 0, 255}, "magenta"},
	{rgb{0, 0, 0}, "black"},
	{rgb{255, 255, 255}, "white"},
	{rgb{128, 128, 128}, "gray"},
	{rgb{255, 165, 0}, "orange"},
	{rgb{128, 0, 128}, "purple"},
	{rgb{165, 42, 42}, "brown"},
}

// DetectDominantColor определяет доминирующий цвет изображения: кластеризует
// пиксели k-средними до одного кластера и подбирает ближайший именованный цвет.
// При любой ошибке возвращает заглушку, а не ошибку: цвет — best-effort атрибут.
func DetectDominantColor(imagePath string) string {
	f, err := os.Open(imagePath)
	if err != nil {
		return domain.PlaceholderColor
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return domain.PlaceholderColor
	}

	centroid, ok := dominantCentroid(img)
	if !ok {
		return domain.PlaceholderColor
	}

	return nearestNamedColor(centroid)
}

// dominantCentroid возвращает центроид единственного k-means кластера пикселей.
// При k=1 назначение кластеров тривиально и центроид сходится к среднему цвету
// за одну итерацию.
func dominantCentroid(img image.Image) (rgb, bool) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return rgb{}, false
	}

	var sum rgb
	var count float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sum.r += float64(r >> 8)
			sum.g += float64(g >> 8)
			sum.b += float64(b >> 8)
			count++
		}
	}

	return rgb{sum.r / count, sum.g / count, sum.b / count}, true
}

// nearestNamedColor возвращает имя опорного цвета, ближайшего к данному
// по Евклидову расстоянию в RGB.
func nearestNamedColor(c rgb) string {
	minDistance := math.Inf(1)
	closest := domain.PlaceholderColor

	for _, nc := range namedColors {
		d := math.Sqrt((c.r-nc.ref.r)*(c.r-nc.ref.r) + (c.g-nc.ref.g)*(c.g-nc.ref.g) + (c.b-nc.ref.b)*(c.b-nc.ref.b))
		if d < minDistance {
			minDistance = d
			closest = nc.name
		}
	}

	return closest
}
