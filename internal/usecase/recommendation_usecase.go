package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

// recommendationCount — верхняя граница размера выдачи; контракт гарантирует
// "не больше 10", но не ровно 10 (пропуски гидрации сокращают список).
const recommendationCount = 10

// RecommendationUseCase собирает персональные рекомендации: вкус пользователя →
// текст запроса → вектор → поиск по индексу → гидрация → сюрреалистичные заглушки.
type RecommendationUseCase struct {
	engine      EngineInfra
	profileRepo ProfileRepository
	catalogRepo CatalogRepository
	cacheRepo   CacheRepository
	embedder    EmbedderInfra
	filler      *Filler
	logger      logger.Logger
}

func NewRecommendationUC(
	engine EngineInfra,
	profileRepo ProfileRepository,
	catalogRepo CatalogRepository,
	cacheRepo CacheRepository,
	embedder EmbedderInfra,
	filler *Filler,
	logger logger.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		engine:      engine,
		profileRepo: profileRepo,
		catalogRepo: catalogRepo,
		cacheRepo:   cacheRepo,
		embedder:    embedder,
		filler:      filler,
		logger:      logger,
	}
}

// Generate возвращает до 10 рекомендаций для пользователя. При недостатке
// сигнала о вкусе отдаётся резервный набор — первые предметы инвентаря в
// порядке хранения, обработанные тем же путём гидрации и заглушек.
func (r *RecommendationUseCase) Generate(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	const op = "RecommendationUseCase.Generate"

	if strings.TrimSpace(userID) == "" {
		return nil, e.Wrap(op, e.ErrUserIDRequired)
	}

	if err := r.engine.Init(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	texts, err := r.tasteTexts(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(texts) == 0 {
		r.logger.Debugf("no taste signal for user %s, serving default set", userID)
		return r.defaultSet(ctx)
	}

	query, err := r.tasteVector(ctx, texts)
	if err != nil {
		// Недоступность сервиса эмбеддингов не валит запрос — деградируем
		// до резервного набора.
		r.logger.Warnf("taste embedding failed for user %s, serving default set: %v", userID, err)
		return r.defaultSet(ctx)
	}

	candidates, err := r.engine.Search(query, recommendationCount)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items := make([]domain.IndexedItem, 0, len(candidates))
	for _, candidate := range candidates {
		items = append(items, candidate.Item)
	}

	return r.assemble(ctx, items)
}

// tasteTexts строит тексты вкуса из предпочтений профиля.
// Пустой результат означает "недостаточно сигнала", не ошибку.
func (r *RecommendationUseCase) tasteTexts(ctx context.Context, userID string) ([]string, error) {
	profile, err := r.profileRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, e.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}

	switch profile.Preferences.Kind {
	case domain.PreferencesList:
		return listTasteTexts(profile.Preferences.Swipes), nil
	case domain.PreferencesAggregate:
		if text := aggregateTasteText(profile.Preferences.Counts); text != "" {
			return []string{text}, nil
		}
		return nil, nil
	default:
		return nil, nil
	}
}

// listTasteTexts строит по одному короткому тексту на каждый лайкнутый свайп.
func listTasteTexts(swipes []domain.Swipe) []string {
	texts := make([]string, 0, len(swipes))
	for _, swipe := range swipes {
		if swipe.Swipe != domain.Like {
			continue
		}
		texts = append(texts, fmt.Sprintf("%s %s %s",
			swipe.MetaString("primary_color", domain.PlaceholderColor),
			swipe.MetaString("pattern", domain.PlaceholderPattern),
			swipe.MetaString("fit", domain.PlaceholderFit),
		))
	}
	return texts
}

// aggregateTasteText выбирает для каждого атрибута значение с наибольшим
// счётчиком; равенство разрешается в пользу лексикографически меньшего.
func aggregateTasteText(counts map[string]map[string]int) string {
	parts := make([]string, 0, 3)
	for _, attr := range []string{"primary_color", "pattern", "fit"} {
		values := counts[attr]
		if len(values) == 0 {
			continue
		}

		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		best := keys[0]
		for _, k := range keys[1:] {
			if values[k] > values[best] {
				best = k
			}
		}
		parts = append(parts, best)
	}

	return strings.Join(parts, " ")
}

// tasteVector получает эмбеддинги текстов и усредняет их поэлементно.
func (r *RecommendationUseCase) tasteVector(ctx context.Context, texts []string) ([]float32, error) {
	vectors, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, e.ErrEmptyVectors
	}

	dim := len(vectors[0])
	sums := make([]float64, dim)
	for _, vec := range vectors {
		if len(vec) != dim {
			return nil, e.ErrDimensionMismatch
		}
		for i, v := range vec {
			sums[i] += float64(v)
		}
	}

	mean := make([]float32, dim)
	for i, s := range sums {
		mean[i] = float32(s / float64(len(vectors)))
	}

	return mean, nil
}

// defaultSet — резервная выдача: первые предметы метаданных движка,
// гидрированные и обработанные заглушками ровно как similarity-путь.
func (r *RecommendationUseCase) defaultSet(ctx context.Context) ([]domain.Recommendation, error) {
	const op = "RecommendationUseCase.defaultSet"

	items, err := r.engine.Default(recommendationCount)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return r.assemble(ctx, items)
}

// assemble гидрирует кандидатов актуальными данными каталога (кэш → БД),
// пропуская предметы без записи, и применяет политику заглушек.
func (r *RecommendationUseCase) assemble(ctx context.Context, items []domain.IndexedItem) ([]domain.Recommendation, error) {
	const op = "RecommendationUseCase.assemble"

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	hydrated, err := r.hydrate(ctx, ids)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	recommendations := make([]domain.Recommendation, 0, len(items))
	for _, item := range items {
		info, ok := hydrated[item.ID]
		if !ok {
			r.logger.Debugf("no catalog record for indexed item %s, skipping", item.ID)
			continue
		}

		rec := domain.Recommendation{
			ID:           info.ID,
			Name:         info.Name,
			Image:        info.ImageURL,
			Fit:          info.Attrs.Fit,
			PrimaryColor: info.Attrs.PrimaryColor,
			Brand:        info.Attrs.Brand,
			Price:        info.Attrs.Price,
		}
		recommendations = append(recommendations, r.filler.Apply(rec))
	}

	return recommendations, nil
}

// hydrate собирает актуальные данные предметов: сперва кэш, промахи — из БД
// с фоновым дозаполнением кэша.
func (r *RecommendationUseCase) hydrate(ctx context.Context, ids []string) (map[string]ItemInfo, error) {
	const op = "RecommendationUseCase.hydrate"

	result := make(map[string]ItemInfo, len(ids))

	cached, err := r.cacheRepo.GetItems(ctx, ids)
	if err != nil {
		r.logger.Warnf("item cache lookup failed: %v", e.Wrap(op, err))
		cached = nil
	}

	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if info, ok := cached[id]; ok {
			result[id] = info
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fromDB, err := r.catalogRepo.GetItemsInfo(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, info := range fromDB {
			result[info.ID] = info
		}

		// Фоновое дозаполнение кэша
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := r.cacheRepo.SetItems(bgCtx, fromDB); err != nil {
				r.logger.Warnf("failed to cache items in background: %v", e.Wrap(op, err))
			}
		}()
	}

	return result, nil
}
