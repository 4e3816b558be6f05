package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cashier_app/internal/models"

	"github.com/go-redis/redis/v8"
)

const reportKey = "report:orders"

// ErrCacheMiss is returned when a requested key is absent.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
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

	return &Client{rdb: rdb}, nil
}

// Report caching. The sales report is the only expensive read in the system,
// so it is cached whole and invalidated on every order write.

func (c *Client) SetReport(rows []models.ReportRow, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return c.rdb.Set(ctx, reportKey, jsonData, ttl).Err()
}

func (c *Client) GetReport() ([]models.ReportRow, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, reportKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var rows []models.ReportRow
	if err := json.Unmarshal([]byte(val), &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return rows, nil
}

func (c *Client) InvalidateReport() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, reportKey).Err()
}
