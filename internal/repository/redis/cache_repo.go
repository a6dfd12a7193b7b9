package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jimlawless/whereami"
	"github.com/redis/go-redis/v9"
	"github.com/schnuffelll/shop-backend/internal/cfg"
	"github.com/schnuffelll/shop-backend/internal/domain"
	"github.com/schnuffelll/shop-backend/internal/repository/redis/converter"
	"github.com/schnuffelll/shop-backend/pkg/clients"
	"github.com/schnuffelll/shop-backend/pkg/e"
	"github.com/schnuffelll/shop-backend/pkg/logger"
)

// CacheRepo кэширует карточки товаров по slug.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProduct возвращает закэшированную карточку товара или nil при промахе.
// Промах не считается ошибкой.
func (r *CacheRepo) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	key := r.productKey(slug)

	data, err := r.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.ProductRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
			r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	if model.Slug != slug {
		r.logger.Warnf("Cache slug mismatch: key_slug: %s, model_slug: %s", slug, model.Slug)
		if err := r.client.Client.Del(context.Background(), key).Err(); err != nil {
			r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // cache miss
	}

	return r.conv.ToEntity(&model), nil
}

// SetProduct кэширует карточку товара с заданным TTL.
func (r *CacheRepo) SetProduct(ctx context.Context, product *domain.Product) error {
	model := r.conv.ToRedisModel(product)

	data, err := json.Marshal(model)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, r.productKey(model.Slug), data, r.cfg.ProductTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteProducts удаляет карточки из кэша по слагам
func (r *CacheRepo) DeleteProducts(ctx context.Context, slugs []string) error {
	if len(slugs) == 0 {
		return nil
	}

	keys := make([]string, len(slugs))
	for i, slug := range slugs {
		keys[i] = r.productKey(slug)
	}

	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// productKey возвращает Redis-ключ для карточки товара
func (r *CacheRepo) productKey(slug string) string {
	return fmt.Sprintf("product:slug:%s", slug)
}
