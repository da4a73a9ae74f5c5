package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"super_crunch/internal/cart"
	"super_crunch/internal/models"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when a cached value is absent.
var ErrCacheMiss = errors.New("cache miss")

const catalogKey = "catalog:visible"

type Client struct {
	rdb        *redis.Client
	cartTTL    time.Duration
	catalogTTL time.Duration
}

func Initialize(redisURL string, cartTTL, catalogTTL time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, cartTTL: cartTTL, catalogTTL: catalogTTL}, nil
}

// Cart snapshots

func (c *Client) SaveCart(sessionID string, items []cart.Item) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}

	return c.rdb.Set(ctx, "cart:"+sessionID, jsonData, c.cartTTL).Err()
}

// LoadCart returns (nil, nil) for an absent cart. Corrupt payloads are an
// error; the cart store turns both into an empty cart.
func (c *Client) LoadCart(sessionID string) ([]cart.Item, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "cart:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []cart.Item
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart snapshot: %w", err)
	}

	return items, nil
}

func (c *Client) DeleteCart(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "cart:"+sessionID).Err()
}

// Catalog cache

func (c *Client) GetCatalog() ([]models.Dish, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, catalogKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cached catalog: %w", err)
	}

	var dishes []models.Dish
	if err := json.Unmarshal([]byte(val), &dishes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached catalog: %w", err)
	}

	return dishes, nil
}

func (c *Client) SetCatalog(dishes []models.Dish) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(dishes)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	return c.rdb.Set(ctx, catalogKey, jsonData, c.catalogTTL).Err()
}

func (c *Client) InvalidateCatalog() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, catalogKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
