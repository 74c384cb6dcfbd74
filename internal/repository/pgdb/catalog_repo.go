package pgdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thuli-tech/style-backend/internal/domain"
	"github.com/thuli-tech/style-backend/internal/repository/pgdb/converter"
	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// Таблицы изображений квизов; UpsertQuizImage принимает только их.
const (
	TableInitialQuiz = "initial_quiz_img"
	TableRefineQuiz  = "refine_quiz_img"
	TableQuizPool    = "quiz_pool_img"
)

// CatalogRepo реализует репозиторий каталога (квизы + инвентарь) поверх PostgreSQL.
type CatalogRepo struct {
	pool *pgxpool.Pool
	conv converter.QuizImageConverter
}

func NewCatalogRepo(pool *pgxpool.Pool, conv converter.QuizImageConverter) *CatalogRepo {
	return &CatalogRepo{
		pool: pool,
		conv: conv,
	}
}

// InitialQuizImages возвращает весь набор изображений начального квиза.
func (c *CatalogRepo) InitialQuizImages(ctx context.Context) ([]domain.QuizImage, error) {
	query := `
		SELECT id, name, image_url, metadata
		FROM initial_quiz_img
		ORDER BY id
	`

	return c.queryQuizImages(ctx, query)
}

// RefinePoolImages возвращает случайную выборку пула квизов, исключая
// изображения с перечисленными именами (история просмотров пользователя).
func (c *CatalogRepo) RefinePoolImages(ctx context.Context, excludeNames []string, limit int) ([]domain.QuizImage, error) {
	if excludeNames == nil {
		excludeNames = []string{}
	}

	query := `
		SELECT id, name, image_url, metadata
		FROM quiz_pool_img
		WHERE name <> ALL($1)
		ORDER BY random()
		LIMIT $2
	`

	return c.queryQuizImages(ctx, query, excludeNames, limit)
}

func (c *CatalogRepo) queryQuizImages(ctx context.Context, query string, args ...any) ([]domain.QuizImage, error) {
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.QuizImage, 0)
	for rows.Next() {
		var model converter.QuizImageModel
		if err := rows.Scan(&model.ID, &model.Name, &model.ImageURL, &model.Metadata); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// GetItemsInfo возвращает актуальные данные предметов инвентаря по их ID.
// Колонки brand и price_cents имеют приоритет над снимком метаданных.
func (c *CatalogRepo) GetItemsInfo(ctx context.Context, ids []string) ([]usecase.ItemInfo, error) {
	query := `
		SELECT id, name, image_url, metadata, brand, price_cents
		FROM inventory_items
		WHERE id = ANY($1)
	`

	rows, err := c.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ItemInfo, 0, len(ids))
	for rows.Next() {
		var model converter.ItemModel
		if err := rows.Scan(&model.ID, &model.Name, &model.ImageURL, &model.Metadata, &model.Brand, &model.PriceCents); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, itemInfoFromModel(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// UpsertQuizImage идемпотентно добавляет изображение в одну из таблиц квизов
// (конфликт по имени — обновление ссылки и метаданных).
func (c *CatalogRepo) UpsertQuizImage(ctx context.Context, table string, image *domain.QuizImage) error {
	switch table {
	case TableInitialQuiz, TableRefineQuiz, TableQuizPool:
	default:
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("unknown quiz table %q", table))
	}

	meta, err := json.Marshal(image.Meta)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (name, image_url, metadata)
		VALUES ($1, $2, $3)
		ON CONFLICT (name)
		DO UPDATE SET
			image_url = EXCLUDED.image_url,
			metadata = EXCLUDED.metadata;
	`, table)

	if _, err := c.pool.Exec(ctx, query, image.Name, image.URI, meta); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// UpsertItem идемпотентно добавляет или обновляет предмет инвентаря.
func (c *CatalogRepo) UpsertItem(ctx context.Context, item *usecase.ItemInfo) error {
	meta, err := json.Marshal(item.Attrs)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO inventory_items (id, name, image_url, metadata, brand, price_cents)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			image_url = EXCLUDED.image_url,
			metadata = EXCLUDED.metadata,
			brand = EXCLUDED.brand,
			price_cents = EXCLUDED.price_cents;
	`

	priceCents := int64(item.Attrs.Price * 100)
	if _, err := c.pool.Exec(ctx, query, item.ID, item.Name, item.ImageURL, meta, item.Attrs.Brand, priceCents); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// itemInfoFromModel собирает DTO, перекрывая снимок метаданных актуальными колонками.
func itemInfoFromModel(model *converter.ItemModel) usecase.ItemInfo {
	var attrs domain.Attrs
	if err := json.Unmarshal(model.Metadata, &attrs); err != nil {
		attrs = domain.DefaultAttrs()
	}

	if model.Brand != "" {
		attrs.Brand = model.Brand
	}
	if model.PriceCents > 0 {
		attrs.Price = float64(model.PriceCents) / 100
	}

	return usecase.NewItemInfo(model.ID, model.Name, model.ImageURL, attrs)
}
