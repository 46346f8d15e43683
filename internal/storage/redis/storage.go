package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/shopsim/internal/model"
	"github.com/mcoot/shopsim/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveProduct(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}

	key := productKey(product.ID())
	indexKey := productIndexKey()

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, key, data, s.cfg.ProductTTL)
	pipe.SAdd(ctx, indexKey, key)
	if s.cfg.ProductTTL > 0 {
		pipe.Expire(ctx, indexKey, s.cfg.ProductTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetProduct(ctx context.Context, id model.ProductID) (*model.Product, error) {
	data, err := s.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrProductNotFound
		}
		return nil, err
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Storage) ListProducts(ctx context.Context) ([]*model.Product, error) {
	keys, err := s.client.SMembers(ctx, productIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []*model.Product{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	products := make([]*model.Product, 0, len(values))
	for i, val := range values {
		str, ok := val.(string)
		if !ok {
			continue // expired
		}
		var product model.Product
		if err := json.Unmarshal([]byte(str), &product); err != nil {
			return nil, fmt.Errorf("decode %s: %w", keys[i], err)
		}
		products = append(products, &product)
	}

	slices.SortFunc(products, func(a, b *model.Product) int {
		return int(a.ID() - b.ID())
	})
	return products, nil
}

func (s *Storage) DeleteAllProducts(ctx context.Context) error {
	indexKey := productIndexKey()

	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	for _, key := range keys {
		pipe.Del(ctx, key)
	}
	pipe.Del(ctx, indexKey)
	_, err = pipe.Exec(ctx)
	return err
}
