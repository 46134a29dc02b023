package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nexaterminal/internal/model"
)

// ResultCache keeps the latest assessment per user and topic
type ResultCache interface {
	Get(ctx context.Context, userID, topic string) (*model.Assessment, error)
	// Set stores a unless the cached assessment was created after it
	Set(ctx context.Context, a *model.Assessment) error
}

// setIfNewer keeps the entry as a hash of creation time (microseconds)
// and payload so the comparison and the write happen atomically.
var setIfNewer = redis.NewScript(`
local at = redis.call('HGET', KEYS[1], 'at')
if at and tonumber(at) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'at', ARGV[1], 'data', ARGV[2])
if tonumber(ARGV[3]) > 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[3])
end
return 1
`)

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new result cache
func NewResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	return &resultCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *resultCache) key(userID, topic string) string {
	return fmt.Sprintf("healthcheck:%s:%s:latest", topic, userID)
}

func (c *resultCache) Get(ctx context.Context, userID, topic string) (*model.Assessment, error) {
	data, err := c.client.HGet(ctx, c.key(userID, topic), "data").Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a model.Assessment
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *resultCache) Set(ctx context.Context, a *model.Assessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	key := c.key(a.UserID, a.Topic)
	return setIfNewer.Run(ctx, c.client, []string{key}, a.CreatedAt.UnixMicro(), data, c.ttl.Milliseconds()).Err()
}
