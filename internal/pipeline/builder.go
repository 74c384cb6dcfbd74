package pipeline

import (
	"context"
	"os"
	"sync"

	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/index"
	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

// Builder строит пару артефактов рекомендательного движка: плоский L2-индекс
// и позиционно спаренный с ним список метаданных.
type Builder struct {
	embedder      usecase.EmbedderInfra
	vectorSize    int
	maxConcurrent int
	logger        logger.Logger
}

func NewBuilder(embedder usecase.EmbedderInfra, vectorSize, maxConcurrent int, logger logger.Logger) *Builder {
	return &Builder{
		embedder:      embedder,
		vectorSize:    vectorSize,
		maxConcurrent: maxConcurrent,
		logger:        logger,
	}
}

// Build векторизует изображения предметов и пишет артефакты на диск.
// Предметы, чьё изображение не удалось прочитать или векторизовать,
// пропускаются; порядок успешно обработанных предметов сохраняется, так что
// позиция i в индексе всегда указывает на позицию i в метаданных.
// Пустой результат — ошибка: движку нечего загружать.
func (b *Builder) Build(ctx context.Context, items []Item, indexPath, metadataPath string) error {
	const op = "Builder.Build"

	vectors := b.embedAll(ctx, items)

	var (
		kept     []domain.IndexedItem
		keptVecs [][]float32
	)
	for i := range items {
		if vectors[i] == nil {
			continue
		}
		kept = append(kept, domain.NewIndexedItem(items[i].ID, items[i].PublicURL, items[i].Attrs))
		keptVecs = append(keptVecs, vectors[i])
	}

	if len(kept) == 0 {
		return e.Wrap(op, e.ErrEmptyIndex)
	}

	flat, err := index.NewFlat(b.vectorSize)
	if err != nil {
		return e.Wrap(op, err)
	}
	if err := flat.Add(keptVecs...); err != nil {
		return e.Wrap(op, err)
	}

	if err := index.WriteArtifacts(indexPath, metadataPath, flat, kept); err != nil {
		return e.Wrap(op, err)
	}

	b.logger.Infof("embedding store built: %d/%d items indexed, dim %d", len(kept), len(items), b.vectorSize)
	return nil
}

// embedAll векторизует изображения с ограниченной конкурентностью. Результаты
// кладутся в слоты по индексу исходного предмета, чтобы конкуренция не ломала
// позиционное соответствие; неудачи оставляют nil в слоте.
func (b *Builder) embedAll(ctx context.Context, items []Item) [][]float32 {
	vectors := make([][]float32, len(items))
	sem := make(chan struct{}, b.maxConcurrent)
	var wg sync.WaitGroup

	for i := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			data, err := os.ReadFile(items[i].LocalPath)
			if err != nil {
				b.logger.Warnf("skipping %s: %v", items[i].ID, err)
				return
			}

			vector, err := b.embedder.EmbedImage(ctx, data)
			if err != nil {
				b.logger.Warnf("skipping %s: embedding failed: %v", items[i].ID, err)
				return
			}

			vectors[i] = vector
		}()
	}

	wg.Wait()
	return vectors
}
