package embedder

import (
	"context"
	"fmt"
	"time"

	"github.com/thuli-tech/style-backend/internal/cfg"
	"github.com/thuli-tech/style-backend/internal/proto"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/jitter"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

// Embedder клиент для взаимодействия с внешним сервисом эмбеддингов
type Embedder struct {
	client       proto.EmbedderServiceClient
	vectorSize   int
	maxRetries   int
	modelVersion string
	logger       logger.Logger
}

func NewEmbedder(client proto.EmbedderServiceClient, cfg *cfg.EmbedderCfg, vectorSize int, logger logger.Logger) *Embedder {
	return &Embedder{
		client:       client,
		vectorSize:   vectorSize,
		maxRetries:   cfg.MaxRetries,
		modelVersion: cfg.ModelVersion,
		logger:       logger,
	}
}

// checkModelVersion предупреждает о расхождении модели: векторы разных моделей
// несовместимы с построенным индексом.
func (m *Embedder) checkModelVersion(got string) {
	if got != "" && got != m.modelVersion {
		m.logger.Warnf("embedding model mismatch: expected %s, got %s", m.modelVersion, got)
	}
}

// EmbedTexts векторизует тексты одним батчевым запросом с retry-логикой и экспоненциальной задержкой.
// Порядок векторов в ответе совпадает с порядком текстов в запросе.
func (m *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	const op = "Embedder.EmbedTexts"

	if len(texts) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyVectors)
	}

	var vectors [][]float32
	err := m.withRetries(ctx, op, func() error {
		res, err := m.client.EmbedText(ctx, &proto.EmbedTextRequest{Texts: texts})
		if err != nil {
			return err
		}
		m.checkModelVersion(res.ModelVersion)

		out := make([][]float32, 0, len(res.Vectors))
		for _, v := range res.Vectors {
			if err := m.checkDim(v.Values); err != nil {
				return err
			}
			out = append(out, v.Values)
		}

		vectors = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(vectors) != len(texts) {
		return nil, e.Wrap(op, fmt.Errorf("expected %d vectors, got %d", len(texts), len(vectors)))
	}

	return vectors, nil
}

// EmbedImage векторизует одно изображение с retry-логикой и экспоненциальной задержкой.
func (m *Embedder) EmbedImage(ctx context.Context, data []byte) ([]float32, error) {
	const op = "Embedder.EmbedImage"

	var vector []float32
	err := m.withRetries(ctx, op, func() error {
		res, err := m.client.EmbedImage(ctx, &proto.EmbedImageRequest{ImageData: data})
		if err != nil {
			return err
		}
		m.checkModelVersion(res.ModelVersion)
		if res.Vector == nil {
			return e.ErrEmptyVectors
		}
		if err := m.checkDim(res.Vector.Values); err != nil {
			return err
		}

		vector = res.Vector.Values
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vector, nil
}

func (m *Embedder) withRetries(ctx context.Context, op string, call func() error) error {
	const (
		baseJitter = 1 * time.Second
		maxJitter  = 30 * time.Second
	)

	for attempt := 0; attempt < m.maxRetries; attempt++ {
		err := call()
		if err == nil {
			return nil
		}

		if attempt == m.maxRetries-1 {
			return e.Wrap(op, fmt.Errorf("all %d attempts failed: %w", m.maxRetries, err))
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		m.logger.Warnf("embedding request failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, err)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return e.Wrap(op, ctx.Err())
		}
	}

	return e.Wrap(op, fmt.Errorf("unreachable"))
}

func (m *Embedder) checkDim(values []float32) error {
	if len(values) != m.vectorSize {
		return fmt.Errorf("%w: expected %d, got %d", e.ErrDimensionMismatch, m.vectorSize, len(values))
	}

	return nil
}
