package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ViolationStats counts violations per question in a Redis ZSET per topic
type ViolationStats interface {
	Record(ctx context.Context, topic string, questionIDs []string) error
	Top(ctx context.Context, topic string, limit int) ([]ViolationCount, error)
}

// ViolationCount is a single entry of the ranking
type ViolationCount struct {
	QuestionID string `json:"questionId"`
	Count      int64  `json:"count"`
}

type violationStats struct {
	client *redis.Client
}

// NewViolationStats creates a new violation statistics store
func NewViolationStats(client *redis.Client) ViolationStats {
	return &violationStats{
		client: client,
	}
}

func (c *violationStats) key(topic string) string {
	return fmt.Sprintf("healthcheck:%s:violations", topic)
}

func (c *violationStats) Record(ctx context.Context, topic string, questionIDs []string) error {
	if len(questionIDs) == 0 {
		return nil
	}
	pipe := c.client.TxPipeline()
	for _, id := range questionIDs {
		pipe.ZIncrBy(ctx, c.key(topic), 1, id)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *violationStats) Top(ctx context.Context, topic string, limit int) ([]ViolationCount, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(topic), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]ViolationCount, len(results))
	for i, z := range results {
		entries[i] = ViolationCount{
			QuestionID: z.Member.(string),
			Count:      int64(z.Score),
		}
	}
	return entries, nil
}
