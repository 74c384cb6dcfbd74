package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

// Uploader переносит предметы датасета в S3 и каталожные таблицы.
type Uploader struct {
	images      usecase.ImageRepository
	catalog     usecase.CatalogRepository
	uploadLimit int
	logger      logger.Logger
}

func NewUploader(
	images usecase.ImageRepository,
	catalog usecase.CatalogRepository,
	uploadLimit int,
	logger logger.Logger,
) *Uploader {
	return &Uploader{
		images:      images,
		catalog:     catalog,
		uploadLimit: uploadLimit,
		logger:      logger,
	}
}

// UploadQuiz загружает изображения квиза в бакет и апсертит записи каталожной
// таблицы. Уже существующие объекты пропускаются; ошибка одного предмета не
// прерывает загрузку остальных. Заполняет PublicURL у каждого предмета.
func (u *Uploader) UploadQuiz(ctx context.Context, bucket, table string, items []Item) error {
	const op = "Uploader.UploadQuiz"

	if err := u.uploadImages(ctx, bucket, items); err != nil {
		return e.Wrap(op, err)
	}

	var failed int
	for i := range items {
		if items[i].PublicURL == "" {
			failed++
			continue
		}

		image := domain.NewQuizImage(0, items[i].ID, items[i].PublicURL, attrsToMeta(items[i].Attrs))
		if err := u.catalog.UpsertQuizImage(ctx, table, &image); err != nil {
			u.logger.Warnf("upsert quiz image %s into %s failed: %v", items[i].ID, table, err)
			failed++
		}
	}

	if failed == len(items) && len(items) > 0 {
		return e.Wrap(op, fmt.Errorf("all %d items failed", len(items)))
	}

	u.logger.Infof("uploaded %d/%d quiz images into %s", len(items)-failed, len(items), table)
	return nil
}

// UploadInventory загружает изображения инвентаря и апсертит предметы в
// таблицу инвентаря с брендом и ценой.
func (u *Uploader) UploadInventory(ctx context.Context, bucket string, items []Item) error {
	const op = "Uploader.UploadInventory"

	if err := u.uploadImages(ctx, bucket, items); err != nil {
		return e.Wrap(op, err)
	}

	var failed int
	for i := range items {
		if items[i].PublicURL == "" {
			failed++
			continue
		}

		info := usecase.NewItemInfo(items[i].ID, items[i].ID, items[i].PublicURL, items[i].Attrs)
		if err := u.catalog.UpsertItem(ctx, &info); err != nil {
			u.logger.Warnf("upsert inventory item %s failed: %v", items[i].ID, err)
			failed++
		}
	}

	if failed == len(items) && len(items) > 0 {
		return e.Wrap(op, fmt.Errorf("all %d items failed", len(items)))
	}

	u.logger.Infof("uploaded %d/%d inventory items", len(items)-failed, len(items))
	return nil
}

// uploadImages параллельно загружает изображения с ограничением числа
// одновременных загрузок. Перед загрузкой дозаполняет цвет предмета по
// доминирующему цвету изображения, если явного атрибута цвета не было.
func (u *Uploader) uploadImages(ctx context.Context, bucket string, items []Item) error {
	sem := make(chan struct{}, u.uploadLimit)
	var wg sync.WaitGroup

	for i := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			u.uploadImage(ctx, bucket, &items[i])
		}()
	}

	wg.Wait()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

func (u *Uploader) uploadImage(ctx context.Context, bucket string, item *Item) {
	objectKey := item.ID + ".jpg"

	if item.Attrs.PrimaryColor == domain.PlaceholderColor {
		if detected := DetectDominantColor(item.LocalPath); detected != domain.PlaceholderColor {
			item.Attrs.PrimaryColor = detected
			u.logger.Debugf("detected color for %s: %s", item.ID, detected)
		}
	}

	exists, err := u.images.Exists(ctx, bucket, objectKey)
	if err != nil {
		u.logger.Warnf("stat %s/%s failed: %v", bucket, objectKey, err)
		return
	}

	if !exists {
		data, err := os.ReadFile(item.LocalPath)
		if err != nil {
			u.logger.Warnf("image not found: %s", item.LocalPath)
			return
		}

		if _, err := u.images.Upload(ctx, usecase.NewUploadImageReq(bucket, objectKey, data, "image/jpeg")); err != nil {
			u.logger.Warnf("upload %s/%s failed: %v", bucket, objectKey, err)
			return
		}
	}

	item.PublicURL = u.images.PublicURL(bucket, objectKey)
}

func attrsToMeta(attrs domain.Attrs) map[string]any {
	return map[string]any{
		"primary_color": attrs.PrimaryColor,
		"fit":           attrs.Fit,
		"pattern":       attrs.Pattern,
		"type":          attrs.Type,
		"brand":         attrs.Brand,
		"price":         attrs.Price,
	}
}
