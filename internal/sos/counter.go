package sos

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// PressCounter counts SOS presses per user. Counts only ever grow.
type PressCounter interface {
	Increment(ctx context.Context, userID string) (int64, error)
}

type MemoryCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{counts: make(map[string]int64)}
}

func (c *MemoryCounter) Increment(_ context.Context, userID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[userID]++
	return c.counts[userID], nil
}

func (c *MemoryCounter) Count(userID string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[userID]
}

type redisCounter struct {
	client *redis.Client
	prefix string
}

func NewRedisCounter(client *redis.Client) PressCounter {
	return &redisCounter{client: client, prefix: "sos:presses:"}
}

func (c *redisCounter) Increment(ctx context.Context, userID string) (int64, error) {
	return c.client.Incr(ctx, c.prefix+userID).Result()
}
