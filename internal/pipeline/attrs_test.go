package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thuli-tech/style-backend/internal/domain"
)

func set(values ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

func TestMapAttributes(t *testing.T) {
	tests := []struct {
		name       string
		categories map[string]struct{}
		attributes map[string]struct{}
		want       domain.Attrs
	}{
		{
			name:       "empty annotations yield placeholders",
			categories: set(),
			attributes: set(),
			want:       domain.DefaultAttrs(),
		},
		{
			name:       "known category maps to type",
			categories: set("jeans", "sleeve"),
			attributes: set(),
			want: func() domain.Attrs {
				a := domain.DefaultAttrs()
				a.Type = "pant"
				return a
			}(),
		},
		{
			name:       "attribute segments fill color, fit, pattern",
			categories: set("dress"),
			attributes: set("main-color-red", "silhouette-fit-slim", "textile-pattern-floral"),
			want: func() domain.Attrs {
				a := domain.DefaultAttrs()
				a.Type = "dress"
				a.PrimaryColor = "red"
				a.Fit = "slim"
				a.Pattern = "floral"
				return a
			}(),
		},
		{
			name:       "first value in lexicographic order wins",
			categories: set(),
			attributes: set("main-color-red", "main-color-blue"),
			want: func() domain.Attrs {
				a := domain.DefaultAttrs()
				a.PrimaryColor = "blue"
				return a
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapAttributes(tt.categories, tt.attributes))
		})
	}
}
