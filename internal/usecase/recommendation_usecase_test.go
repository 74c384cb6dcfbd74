package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/engine"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

type fakeEngine struct {
	initErr    error
	candidates []engine.Candidate
	defaults   []domain.IndexedItem

	searchedQuery []float32
	searchedK     int
	defaultCalled bool
}

func (f *fakeEngine) Init(ctx context.Context) error { return f.initErr }

func (f *fakeEngine) Search(query []float32, k int) ([]engine.Candidate, error) {
	f.searchedQuery = query
	f.searchedK = k
	return f.candidates, nil
}

func (f *fakeEngine) Default(n int) ([]domain.IndexedItem, error) {
	f.defaultCalled = true
	if n > len(f.defaults) {
		n = len(f.defaults)
	}
	return f.defaults[:n], nil
}

type fakeProfileRepo struct {
	profile *domain.UserProfile
	err     error
}

func (f *fakeProfileRepo) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Exists(ctx context.Context, userID string) (bool, error) {
	return f.profile != nil, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	f.profile = profile
	return nil
}

type fakeCatalogRepo struct {
	items map[string]ItemInfo
}

func (f *fakeCatalogRepo) InitialQuizImages(ctx context.Context) ([]domain.QuizImage, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) RefinePoolImages(ctx context.Context, excludeNames []string, limit int) ([]domain.QuizImage, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) GetItemsInfo(ctx context.Context, ids []string) ([]ItemInfo, error) {
	infos := make([]ItemInfo, 0, len(ids))
	for _, id := range ids {
		if info, ok := f.items[id]; ok {
			infos = append(infos, info)
		}
	}
	return infos, nil
}

func (f *fakeCatalogRepo) UpsertQuizImage(ctx context.Context, table string, image *domain.QuizImage) error {
	return nil
}

func (f *fakeCatalogRepo) UpsertItem(ctx context.Context, item *ItemInfo) error { return nil }

type fakeCacheRepo struct {
	mu    sync.Mutex
	items map[string]ItemInfo
}

func (f *fakeCacheRepo) GetItems(ctx context.Context, ids []string) (map[string]ItemInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[string]ItemInfo)
	for _, id := range ids {
		if info, ok := f.items[id]; ok {
			out[id] = info
		}
	}
	return out, nil
}

func (f *fakeCacheRepo) SetItems(ctx context.Context, items []ItemInfo) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.items == nil {
		f.items = make(map[string]ItemInfo)
	}
	for _, info := range items {
		f.items[info.ID] = info
	}
	return nil
}

func (f *fakeCacheRepo) DeleteItems(ctx context.Context, ids []string) error { return nil }

type fakeEmbedder struct {
	vectors [][]float32
	err     error
	texts   []string
}

func (f *fakeEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	f.texts = texts
	if f.err != nil {
		return nil, f.err
	}
	return f.vectors, nil
}

func (f *fakeEmbedder) EmbedImage(ctx context.Context, data []byte) ([]float32, error) {
	return nil, errors.New("not used")
}

func itemInfoFixture(id string) ItemInfo {
	return NewItemInfo(id, "item "+id, "http://img/"+id+".jpg", domain.Attrs{
		PrimaryColor: "red",
		Fit:          "slim",
		Pattern:      "striped",
		Type:         "shirt",
		Brand:        "Acme",
		Price:        49.99,
	})
}

func newTestRecommendationUC(eng *fakeEngine, profiles *fakeProfileRepo, catalog *fakeCatalogRepo, emb *fakeEmbedder) *RecommendationUseCase {
	return NewRecommendationUC(
		eng,
		profiles,
		catalog,
		&fakeCacheRepo{},
		emb,
		NewFiller(rand.New(rand.NewSource(1))),
		logger.NewSlogLogger(),
	)
}

func TestGenerateRequiresUserID(t *testing.T) {
	uc := newTestRecommendationUC(&fakeEngine{}, &fakeProfileRepo{}, &fakeCatalogRepo{}, &fakeEmbedder{})

	_, err := uc.Generate(context.Background(), "  ")
	assert.ErrorIs(t, err, e.ErrUserIDRequired)
}

func TestGenerateEngineNotLoaded(t *testing.T) {
	eng := &fakeEngine{initErr: e.ErrEngineNotLoaded}
	uc := newTestRecommendationUC(eng, &fakeProfileRepo{}, &fakeCatalogRepo{}, &fakeEmbedder{})

	_, err := uc.Generate(context.Background(), "u1")
	assert.ErrorIs(t, err, e.ErrEngineNotLoaded)
}

func TestGenerateDefaultSetWithoutProfile(t *testing.T) {
	eng := &fakeEngine{
		defaults: []domain.IndexedItem{
			domain.NewIndexedItem("a", "", domain.DefaultAttrs()),
			domain.NewIndexedItem("b", "", domain.DefaultAttrs()),
		},
	}
	catalog := &fakeCatalogRepo{items: map[string]ItemInfo{
		"a": itemInfoFixture("a"),
		"b": itemInfoFixture("b"),
	}}
	profiles := &fakeProfileRepo{err: e.ErrProfileNotFound}

	uc := newTestRecommendationUC(eng, profiles, catalog, &fakeEmbedder{})

	recs, err := uc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	assert.True(t, eng.defaultCalled)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].ID)
	assert.Equal(t, "b", recs[1].ID)
}

func TestGenerateSimilarityPath(t *testing.T) {
	profile := domain.NewUserProfile("u1", domain.NewListPreferences([]domain.Swipe{
		domain.NewSwipe("1", domain.Like, map[string]any{"primary_color": "red", "pattern": "striped", "fit": "slim"}),
		domain.NewSwipe("2", domain.Dislike, map[string]any{"primary_color": "blue"}),
		domain.NewSwipe("3", domain.Like, map[string]any{"primary_color": "green"}),
	}), nil)

	eng := &fakeEngine{
		candidates: []engine.Candidate{
			{Item: domain.NewIndexedItem("a", "", domain.DefaultAttrs()), Distance: 0.1},
			{Item: domain.NewIndexedItem("missing", "", domain.DefaultAttrs()), Distance: 0.2},
			{Item: domain.NewIndexedItem("b", "", domain.DefaultAttrs()), Distance: 0.3},
		},
	}
	catalog := &fakeCatalogRepo{items: map[string]ItemInfo{
		"a": itemInfoFixture("a"),
		"b": itemInfoFixture("b"),
	}}
	emb := &fakeEmbedder{vectors: [][]float32{{1, 3}, {3, 5}}}

	uc := newTestRecommendationUC(eng, &fakeProfileRepo{profile: profile}, catalog, emb)

	recs, err := uc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	// Тексты вкуса строятся только по лайкам, с заглушками на месте
	// отсутствующих атрибутов.
	require.Len(t, emb.texts, 2)
	assert.Equal(t, "red striped slim", emb.texts[0])
	assert.Equal(t, "green solid regular", emb.texts[1])

	// Запрос — поэлементное среднее векторов.
	assert.Equal(t, []float32{2, 4}, eng.searchedQuery)
	assert.Equal(t, 10, eng.searchedK)

	// Кандидат без записи каталога пропущен, а не отдан пустым.
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].ID)
	assert.Equal(t, "b", recs[1].ID)
	assert.Equal(t, "http://img/a.jpg", recs[0].Image)
	assert.Equal(t, "Acme", recs[0].Brand)
}

func TestGenerateEmbedFailureDegradesToDefault(t *testing.T) {
	profile := domain.NewUserProfile("u1", domain.NewListPreferences([]domain.Swipe{
		domain.NewSwipe("1", domain.Like, map[string]any{"primary_color": "red"}),
	}), nil)

	eng := &fakeEngine{
		defaults: []domain.IndexedItem{domain.NewIndexedItem("a", "", domain.DefaultAttrs())},
	}
	catalog := &fakeCatalogRepo{items: map[string]ItemInfo{"a": itemInfoFixture("a")}}
	emb := &fakeEmbedder{err: errors.New("embedder down")}

	uc := newTestRecommendationUC(eng, &fakeProfileRepo{profile: profile}, catalog, emb)

	recs, err := uc.Generate(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, eng.defaultCalled)
	require.Len(t, recs, 1)
}

func TestAggregateTasteText(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]map[string]int
		want   string
	}{
		{
			name: "argmax per attribute in fixed order",
			counts: map[string]map[string]int{
				"primary_color": {"red": 3, "blue": 1},
				"pattern":       {"striped": 2, "solid": 5},
				"fit":           {"slim": 4},
			},
			want: "red solid slim",
		},
		{
			name: "ties resolve lexicographically",
			counts: map[string]map[string]int{
				"primary_color": {"red": 2, "blue": 2},
			},
			want: "blue",
		},
		{
			name: "missing attributes are skipped",
			counts: map[string]map[string]int{
				"fit": {"loose": 1},
			},
			want: "loose",
		},
		{
			name:   "no known attributes",
			counts: map[string]map[string]int{"season": {"winter": 1}},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aggregateTasteText(tt.counts))
		})
	}
}
