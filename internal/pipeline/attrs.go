package pipeline

import (
	"sort"
	"strings"

	"github.com/thuli-tech/style-backend/internal/domain"
)

// typeMap переводит категории датасета в типы предметов каталога.
var typeMap = map[string]string{
	"shirt":  "shirt",
	"dress":  "dress",
	"top":    "shirt",
	"pants":  "pant",
	"jeans":  "pant",
	"jacket": "jacket",
}

// MapAttributes сводит категории и атрибуты аннотаций к нормализованной схеме.
// Категории и атрибуты обходятся в лексикографическом порядке, чтобы результат
// не зависел от порядка строк в аннотациях; выигрывает первое подходящее значение.
func MapAttributes(categories, attributes map[string]struct{}) domain.Attrs {
	attrs := domain.DefaultAttrs()

	for _, cat := range sortedKeys(categories) {
		if t, ok := typeMap[cat]; ok {
			attrs.Type = t
			break
		}
	}

	for _, attr := range sortedKeys(attributes) {
		switch {
		case strings.Contains(attr, "color") && attrs.PrimaryColor == domain.PlaceholderColor:
			attrs.PrimaryColor = lastSegment(attr)
		case strings.Contains(attr, "fit") && attrs.Fit == domain.PlaceholderFit:
			attrs.Fit = lastSegment(attr)
		case strings.Contains(attr, "pattern") && attrs.Pattern == domain.PlaceholderPattern:
			attrs.Pattern = lastSegment(attr)
		}
	}

	return attrs
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func lastSegment(attr string) string {
	parts := strings.Split(attr, "-")
	return parts[len(parts)-1]
}
