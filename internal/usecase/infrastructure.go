package usecase

import (
	"context"

	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/engine"
)

type EmbedderInfra interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
	EmbedImage(ctx context.Context, data []byte) ([]float32, error)
}

type EngineInfra interface {
	Init(ctx context.Context) error
	Search(query []float32, k int) ([]engine.Candidate, error)
	Default(n int) ([]domain.IndexedItem, error)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
	GetPayloadBytes(req *TasteEventReq) ([]byte, error)
}
