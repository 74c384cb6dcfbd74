package usecase

import (
	"context"

	"github.com/thuli-tech/style-backend/internal/domain"
)

type UserRepository interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Exists(ctx context.Context, userID string) (bool, error)
	Upsert(ctx context.Context, profile *domain.UserProfile) error
}

type CatalogRepository interface {
	InitialQuizImages(ctx context.Context) ([]domain.QuizImage, error)
	RefinePoolImages(ctx context.Context, excludeNames []string, limit int) ([]domain.QuizImage, error)
	GetItemsInfo(ctx context.Context, ids []string) ([]ItemInfo, error)
	UpsertQuizImage(ctx context.Context, table string, image *domain.QuizImage) error
	UpsertItem(ctx context.Context, item *ItemInfo) error
}

type CacheRepository interface {
	GetItems(ctx context.Context, ids []string) (map[string]ItemInfo, error)
	SetItems(ctx context.Context, items []ItemInfo) error
	DeleteItems(ctx context.Context, ids []string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, req *UploadImageReq) (string, error)
	Exists(ctx context.Context, bucket, objectKey string) (bool, error)
	Delete(ctx context.Context, bucket, objectKey string) error
	PublicURL(bucket, objectKey string) string
}
