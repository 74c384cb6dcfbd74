package redis

import (
	"context"
	"encoding/json"

	"github.com/jimlawless/whereami"
	"github.com/thuli-tech/style-backend/internal/cfg"
	"github.com/thuli-tech/style-backend/internal/repository/redis/converter"
	"github.com/thuli-tech/style-backend/internal/usecase"
	"github.com/thuli-tech/style-backend/pkg/clients"
	"github.com/thuli-tech/style-backend/pkg/e"
	"github.com/thuli-tech/style-backend/pkg/logger"
)

const itemKeyPrefix = "item:"

// CacheRepo кэширует гидрированные данные предметов инвентаря в Redis.
// Все операции best-effort: промахи и ошибки записи логируются, но не прерывают выдачу.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ItemInfoConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ItemInfoConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetItems возвращает найденные в кэше предметы; отсутствующие ID просто не попадают в результат.
func (r *CacheRepo) GetItems(ctx context.Context, ids []string) (map[string]usecase.ItemInfo, error) {
	keys := itemKeys(ids)

	values, err := r.client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make(map[string]usecase.ItemInfo, len(values))
	for i, val := range values {
		data, ok := asBytes(val)
		if !ok {
			if val != nil {
				r.logger.Warnf("unexpected redis value type for key %s: %T", keys[i], val)
			}
			continue
		}

		var model converter.ItemInfoRedisModel
		if err := json.Unmarshal(data, &model); err != nil {
			r.logger.Warnf("cache unmarshal failed for key %s: %v", keys[i], err)
			continue
		}

		// Расхождение ключа и содержимого означает испорченную запись, выбрасываем её.
		if model.ID != ids[i] {
			r.logger.Warnf("cache id mismatch: key_id %s, model_id %s", ids[i], model.ID)
			if err := r.client.Client.Del(context.Background(), keys[i]).Err(); err != nil {
				r.logger.Warnf("cache del failed: %v", e.Wrap(whereami.WhereAmI(), err))
			}
			continue
		}

		result[ids[i]] = *r.conv.ToUseCase(&model)
	}

	return result, nil
}

// SetItems кэширует предметы одним pipeline с TTL из конфигурации.
func (r *CacheRepo) SetItems(ctx context.Context, items []usecase.ItemInfo) error {
	models := r.conv.ToArrRedisModel(items)

	pipeline := r.client.Client.Pipeline()
	for _, model := range models {
		data, err := json.Marshal(model)
		if err != nil {
			r.logger.Warnf("cache marshal failed for item %s: %v", model.ID, err)
			continue
		}
		pipeline.Set(ctx, itemKeyPrefix+model.ID, data, r.cfg.ItemTTL)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		r.logger.Warnf("cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteItems удаляет предметы из кэша по ID.
func (r *CacheRepo) DeleteItems(ctx context.Context, ids []string) error {
	if err := r.client.Client.Del(ctx, itemKeys(ids)...).Err(); err != nil {
		r.logger.Warnf("cache del failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

func itemKeys(ids []string) []string {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKeyPrefix + id
	}

	return keys
}

// asBytes приводит значение из MGET к []byte; nil означает промах.
func asBytes(val interface{}) ([]byte, bool) {
	switch v := val.(type) {
	case string:
		return []byte(v), true
	case []byte:
		return v, true
	default:
		return nil, false
	}
}
