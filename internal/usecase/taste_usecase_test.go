package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thuli-tech/style-backend/internal/domain"
)

func TestAggregatePreferences(t *testing.T) {
	tests := []struct {
		name       string
		swipes     []domain.Swipe
		wantKind   domain.PreferencesKind
		wantCounts map[string]map[string]int
	}{
		{
			name: "likes are tallied per attribute value",
			swipes: []domain.Swipe{
				domain.NewSwipe("1", domain.Like, map[string]any{"primary_color": "red", "fit": "slim"}),
				domain.NewSwipe("2", domain.Like, map[string]any{"primary_color": "red", "fit": "loose"}),
				domain.NewSwipe("3", domain.Like, map[string]any{"primary_color": "blue"}),
			},
			wantKind: domain.PreferencesAggregate,
			wantCounts: map[string]map[string]int{
				"primary_color": {"red": 2, "blue": 1},
				"fit":           {"slim": 1, "loose": 1},
			},
		},
		{
			name: "dislikes are ignored",
			swipes: []domain.Swipe{
				domain.NewSwipe("1", domain.Dislike, map[string]any{"primary_color": "red"}),
			},
			wantKind: domain.PreferencesEmpty,
		},
		{
			name: "non-string and empty values are skipped",
			swipes: []domain.Swipe{
				domain.NewSwipe("1", domain.Like, map[string]any{"price": 49.99, "pattern": ""}),
			},
			wantKind: domain.PreferencesEmpty,
		},
		{
			name:     "no swipes",
			swipes:   nil,
			wantKind: domain.PreferencesEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := aggregatePreferences(tt.swipes)
			assert.Equal(t, tt.wantKind, prefs.Kind)
			if tt.wantCounts != nil {
				assert.Equal(t, tt.wantCounts, prefs.Counts)
			}
		})
	}
}

func TestSwipedImageIDs(t *testing.T) {
	swipes := []domain.Swipe{
		domain.NewSwipe("b", domain.Like, nil),
		domain.NewSwipe("a", domain.Dislike, nil),
		domain.NewSwipe("b", domain.Like, nil),
	}

	// Порядок сохраняется, дубликаты не схлопываются.
	assert.Equal(t, []string{"b", "a", "b"}, swipedImageIDs(swipes))
}

func TestMergeSwipes(t *testing.T) {
	existing := []domain.Swipe{
		domain.NewSwipe("1", domain.Like, map[string]any{"fit": "slim"}),
		domain.NewSwipe("2", domain.Dislike, nil),
	}
	incoming := []domain.Swipe{
		domain.NewSwipe("2", domain.Like, map[string]any{"fit": "loose"}),
		domain.NewSwipe("3", domain.Like, nil),
	}

	merged := mergeSwipes(existing, incoming)
	require.Len(t, merged, 3)

	// Свайп с совпадающим imageId перезаписан на исходной позиции.
	assert.Equal(t, domain.ImageID("1"), merged[0].ImageID)
	assert.Equal(t, domain.ImageID("2"), merged[1].ImageID)
	assert.Equal(t, domain.Like, merged[1].Swipe)
	assert.Equal(t, "loose", merged[1].MetaString("fit", ""))
	assert.Equal(t, domain.ImageID("3"), merged[2].ImageID)
}

func TestMergeSwipesEmptyExisting(t *testing.T) {
	incoming := []domain.Swipe{domain.NewSwipe("1", domain.Like, nil)}
	merged := mergeSwipes(nil, incoming)
	require.Len(t, merged, 1)
	assert.Equal(t, domain.ImageID("1"), merged[0].ImageID)
}

func TestUnionSeenIDs(t *testing.T) {
	existing := []string{"a", "b"}
	swipes := []domain.Swipe{
		domain.NewSwipe("b", domain.Like, nil),
		domain.NewSwipe("c", domain.Dislike, nil),
		domain.NewSwipe("c", domain.Like, nil),
	}

	// Существующие идут первыми, новые добавляются без дубликатов.
	assert.Equal(t, []string{"a", "b", "c"}, unionSeenIDs(existing, swipes))
}
