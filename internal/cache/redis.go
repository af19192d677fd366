// Package cache реализует кеш приложения поверх Redis.
// Значения сериализуются в JSON; промах кеша не является ошибкой.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ironman-fitness/gym-manager/internal/config"
)

// Cache инкапсулирует клиент Redis.
type Cache struct {
	DB *redis.Client
}

// InitServer подключается к Redis по настройкам конфига.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Cache, error) {
	const op = "cache.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Cache{DB: db}, nil
}

// Get пытается получить значение по ключу. Возвращает false при промахе.
func (c *Cache) Get(key string, result any) (bool, error) {
	const op = "cache.Get"
	val, err := c.DB.Get(context.Background(), key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	err = json.Unmarshal([]byte(val), result)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сохраняет значение в кеш с временем жизни.
func (c *Cache) Set(key string, value any, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.DB.Set(context.Background(), key, jsonData, expiration).Err()
}

// Invalidate удаляет значение из кеша по ключу.
func (c *Cache) Invalidate(key string) error {
	return c.DB.Del(context.Background(), key).Err()
}
