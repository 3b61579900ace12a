package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"online-shop/models"
)

const (
	productListCacheKey = "products:list:all"
	productCacheTTL     = 5 * time.Minute
)

// ProductCache holds the unpaged product listing. Implementations are best
// effort: a miss or failure just falls back to the store. Any mutation of
// product rows, including cart reservations that adjust quantities, must
// invalidate the listing.
type ProductCache interface {
	GetList(ctx context.Context) ([]models.Product, bool)
	SetList(ctx context.Context, products []models.Product)
	Invalidate(ctx context.Context)
}

// RedisProductCache backs ProductCache with the shared Redis client.
type RedisProductCache struct {
	client *redis.Client
}

func NewRedisProductCache(client *redis.Client) *RedisProductCache {
	return &RedisProductCache{client: client}
}

func (c *RedisProductCache) GetList(ctx context.Context) ([]models.Product, bool) {
	cached, err := c.client.Get(ctx, productListCacheKey).Result()
	if err != nil {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(cached), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *RedisProductCache) SetList(ctx context.Context, products []models.Product) {
	data, err := json.Marshal(products)
	if err != nil {
		return
	}
	c.client.Set(ctx, productListCacheKey, data, productCacheTTL)
}

func (c *RedisProductCache) Invalidate(ctx context.Context) {
	c.client.Del(ctx, productListCacheKey)
}
