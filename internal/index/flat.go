// Package index реализует плоский индекс точного поиска ближайших соседей
// по L2-расстоянию. Индекс строится офлайн, сериализуется на диск парой с
// последовательностью метаданных и на сервинге используется только для чтения.
package index

import (
	"fmt"
	"math"
	"sort"

	"github.com/thuli-tech/style-backend/pkg/e"
)

// Flat — точный L2-индекс: вектора хранятся подряд в одном срезе (row-major).
type Flat struct {
	dim  int
	data []float32
}

// Hit — результат поиска: позиция вектора в индексе и расстояние до запроса.
type Hit struct {
	Pos      int
	Distance float32
}

// NewFlat создаёт пустой индекс заданной размерности.
func NewFlat(dim int) (*Flat, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("invalid dimension %d", dim)
	}
	return &Flat{dim: dim}, nil
}

// Add добавляет вектора в конец индекса. Размерность каждого вектора
// обязана совпадать с размерностью индекса.
func (f *Flat) Add(vectors ...[]float32) error {
	for i, v := range vectors {
		if len(v) != f.dim {
			return e.Wrap(fmt.Sprintf("vector %d has dim %d, index dim %d", i, len(v), f.dim), e.ErrDimensionMismatch)
		}
	}

	for _, v := range vectors {
		f.data = append(f.data, v...)
	}
	return nil
}

// Len возвращает количество векторов в индексе.
func (f *Flat) Len() int {
	if f.dim == 0 {
		return 0
	}
	return len(f.data) / f.dim
}

// Dim возвращает размерность индекса.
func (f *Flat) Dim() int {
	return f.dim
}

// Search возвращает k ближайших по L2 векторов в порядке неубывания
// расстояния. Равные расстояния упорядочиваются по позиции вставки.
// Если k больше размера индекса, возвращаются все вектора.
func (f *Flat) Search(query []float32, k int) ([]Hit, error) {
	if len(query) != f.dim {
		return nil, e.Wrap(fmt.Sprintf("query dim %d, index dim %d", len(query), f.dim), e.ErrDimensionMismatch)
	}
	if k <= 0 {
		return nil, nil
	}

	n := f.Len()
	if n == 0 {
		return nil, e.ErrEmptyIndex
	}
	if k > n {
		k = n
	}

	hits := make([]Hit, n)
	for i := 0; i < n; i++ {
		hits[i] = Hit{Pos: i, Distance: f.distance(query, i)}
	}

	// SliceStable сохраняет порядок вставки при равных расстояниях.
	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Distance < hits[b].Distance
	})

	return hits[:k], nil
}

// distance — квадрат L2-расстояния между запросом и вектором на позиции pos,
// свёрнутый в само расстояние. Вычисляется во float64 для устойчивости суммы.
func (f *Flat) distance(query []float32, pos int) float32 {
	row := f.data[pos*f.dim : (pos+1)*f.dim]

	var sum float64
	for i, q := range query {
		d := float64(q) - float64(row[i])
		sum += d * d
	}
	return float32(math.Sqrt(sum))
}

// Vector возвращает копию вектора на позиции pos.
func (f *Flat) Vector(pos int) ([]float32, error) {
	if pos < 0 || pos >= f.Len() {
		return nil, fmt.Errorf("position %d out of range [0, %d)", pos, f.Len())
	}
	out := make([]float32, f.dim)
	copy(out, f.data[pos*f.dim:(pos+1)*f.dim])
	return out, nil
}
