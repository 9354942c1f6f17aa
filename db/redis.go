package db

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

func NewRedisClient(ctx context.Context, host string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: host + ":6379",
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
