// Package engine хранит загруженное состояние движка рекомендаций:
// плоский L2-индекс и спаренную с ним последовательность метаданных.
// Состояние загружается один раз с ограниченными повторами и после
// успешной загрузки неизменяемо, поэтому безопасно разделяется запросами.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/thuli-tech/style-backend/internal/cfg"
	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/index"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/jitter"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

// Engine — явно конструируемое состояние движка; передаётся хендлерам через
// внедрение зависимостей, без глобальных переменных уровня пакета.
type Engine struct {
	cfg    *cfg.EngineCfg
	logger logger.Logger

	mu       sync.RWMutex
	flat     *index.Flat
	metadata []domain.IndexedItem
	loaded   bool
}

// Candidate — кандидат на рекомендацию: запись метаданных и расстояние до запроса.
type Candidate struct {
	Item     domain.IndexedItem
	Distance float32
}

func New(cfg *cfg.EngineCfg, logger logger.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		logger: logger,
	}
}

// Init загружает пару артефактов с диска с ограниченным числом попыток и
// экспоненциальной задержкой. Повторные вызовы после успешной загрузки —
// no-op; параллельные вызовы безопасны.
func (en *Engine) Init(ctx context.Context) error {
	const op = "Engine.Init"

	en.mu.RLock()
	ready := en.loaded
	en.mu.RUnlock()
	if ready {
		return nil
	}

	en.mu.Lock()
	defer en.mu.Unlock()
	if en.loaded {
		return nil
	}

	const maxDelay = 30 * time.Second

	var lastErr error
	for attempt := 0; attempt < en.cfg.InitAttempts; attempt++ {
		flat, items, err := index.ReadArtifacts(en.cfg.IndexPath, en.cfg.MetadataPath)
		if err == nil {
			if flat.Dim() != en.cfg.VectorSize {
				return e.Wrap(fmt.Sprintf("%s: artifact dim %d, configured %d", op, flat.Dim(), en.cfg.VectorSize), e.ErrDimensionMismatch)
			}

			en.flat = flat
			en.metadata = items
			en.loaded = true
			en.logger.Infof("recommendation engine loaded: %d vectors, dim %d", flat.Len(), flat.Dim())
			return nil
		}

		lastErr = err
		if attempt == en.cfg.InitAttempts-1 {
			break
		}

		delay := jitter.ExponentialBackoff(en.cfg.InitDelay, maxDelay, attempt, jitter.DefaultJitter)
		en.logger.Warnf("engine artifacts not available, retrying in %v (attempt %d): %v", delay, attempt+1, err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return e.Wrap(op, ctx.Err())
		}
	}

	return e.Wrap(fmt.Sprintf("%s: %v", op, lastErr), e.ErrEngineNotLoaded)
}

// Loaded сообщает, готов ли движок к поиску.
func (en *Engine) Loaded() bool {
	en.mu.RLock()
	defer en.mu.RUnlock()
	return en.loaded
}

// Search ищет k ближайших предметов к вектору запроса. Позиции, вышедшие за
// границы метаданных, защитно пропускаются, а не приводят к падению.
func (en *Engine) Search(query []float32, k int) ([]Candidate, error) {
	en.mu.RLock()
	defer en.mu.RUnlock()

	if !en.loaded {
		return nil, e.ErrEngineNotLoaded
	}

	hits, err := en.flat.Search(query, k)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(hits))
	for _, hit := range hits {
		if hit.Pos < 0 || hit.Pos >= len(en.metadata) {
			en.logger.Warnf("search returned position %d outside metadata bounds %d, skipping", hit.Pos, len(en.metadata))
			continue
		}
		candidates = append(candidates, Candidate{Item: en.metadata[hit.Pos], Distance: hit.Distance})
	}

	return candidates, nil
}

// Default возвращает первые n записей метаданных в порядке хранения —
// резервная выдача при недостатке сигнала о вкусе пользователя.
func (en *Engine) Default(n int) ([]domain.IndexedItem, error) {
	en.mu.RLock()
	defer en.mu.RUnlock()

	if !en.loaded {
		return nil, e.ErrEngineNotLoaded
	}

	if n > len(en.metadata) {
		n = len(en.metadata)
	}

	out := make([]domain.IndexedItem, n)
	copy(out, en.metadata[:n])
	return out, nil
}

// Dim возвращает размерность загруженного индекса.
func (en *Engine) Dim() int {
	en.mu.RLock()
	defer en.mu.RUnlock()
	if !en.loaded {
		return en.cfg.VectorSize
	}
	return en.flat.Dim()
}
