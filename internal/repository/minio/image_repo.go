package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/thuli-tech/style-backend/internal/cfg"
	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/e"
)

// ImageRepo реализует репозиторий изображений поверх MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload загружает изображение в указанный бакет и возвращает ключ объекта.
func (i *ImageRepo) Upload(ctx context.Context, req *usecase.UploadImageReq) (string, error) {
	reader := bytes.NewReader(req.Data)

	info, err := i.mc.PutObject(ctx, req.Bucket, req.ObjectKey, reader, int64(len(req.Data)), minio.PutObjectOptions{
		ContentType: req.MimeType,
	})
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Exists проверяет наличие объекта в бакете.
func (i *ImageRepo) Exists(ctx context.Context, bucket, objectKey string) (bool, error) {
	_, err := i.mc.StatObject(ctx, bucket, objectKey, minio.StatObjectOptions{})
	if err != nil {
		var errResp minio.ErrorResponse
		if errors.As(err, &errResp) && errResp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return true, nil
}

// Delete удаляет объект из MinIO по указанному ключу.
func (i *ImageRepo) Delete(ctx context.Context, bucket, objectKey string) error {
	if err := i.mc.RemoveObject(ctx, bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// PublicURL возвращает публичный адрес объекта для отдачи клиенту.
func (i *ImageRepo) PublicURL(bucket, objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(i.cfg.PublicEndpoint, "/"), bucket, objectKey)
}
