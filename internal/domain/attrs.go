package domain

import "strconv"

// Значения-заглушки, которыми каталог помечает отсутствующие атрибуты.
const (
	PlaceholderColor   = "unknown"
	PlaceholderFit     = "regular"
	PlaceholderPattern = "solid"
	PlaceholderType    = "unknown"
	PlaceholderBrand   = "Unknown Brand"
	PlaceholderPrice   = 0.0
)

// Attrs — нормализованный набор атрибутов предмета одежды.
type Attrs struct {
	PrimaryColor string  `json:"primary_color"`
	Fit          string  `json:"fit"`
	Pattern      string  `json:"pattern"`
	Type         string  `json:"type"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
}

// DefaultAttrs возвращает атрибуты, полностью заполненные заглушками.
func DefaultAttrs() Attrs {
	return Attrs{
		PrimaryColor: PlaceholderColor,
		Fit:          PlaceholderFit,
		Pattern:      PlaceholderPattern,
		Type:         PlaceholderType,
		Brand:        PlaceholderBrand,
		Price:        PlaceholderPrice,
	}
}

// NormalizeAttrs приводит произвольную карту метаданных к известному набору атрибутов.
// Неизвестные ключи отбрасываются, отсутствующие значения заполняются заглушками.
func NormalizeAttrs(meta map[string]any) Attrs {
	attrs := DefaultAttrs()
	if meta == nil {
		return attrs
	}

	if v, ok := stringValue(meta["primary_color"]); ok {
		attrs.PrimaryColor = v
	}
	if v, ok := stringValue(meta["fit"]); ok {
		attrs.Fit = v
	}
	if v, ok := stringValue(meta["pattern"]); ok {
		attrs.Pattern = v
	}
	if v, ok := stringValue(meta["type"]); ok {
		attrs.Type = v
	}
	if v, ok := stringValue(meta["brand"]); ok {
		attrs.Brand = v
	}
	if v, ok := floatValue(meta["price"]); ok {
		attrs.Price = v
	}

	return attrs
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
