package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/catalog-manager/internal/models"
)

// RecentLimit bounds the list of recent notifications kept in Redis.
const RecentLimit = 50

// RedisNotifier publishes notifications on a Redis channel and keeps the
// most recent ones in a list named "<channel>:recent".
type RedisNotifier struct {
	rdb     *redis.Client
	channel string
}

func NewRedisNotifier(rdb *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, channel: channel}
}

func (r *RedisNotifier) Notify(ctx context.Context, n models.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	recent := r.channel + ":recent"
	pipe := r.rdb.TxPipeline()
	pipe.Publish(ctx, r.channel, data)
	pipe.LPush(ctx, recent, data)
	pipe.LTrim(ctx, recent, 0, RecentLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// Recent returns the stored notifications, newest first.
func (r *RedisNotifier) Recent(ctx context.Context) ([]models.Notification, error) {
	entries, err := r.rdb.LRange(ctx, r.channel+":recent", 0, -1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]models.Notification, 0, len(entries))
	for _, e := range entries {
		var n models.Notification
		if err := json.Unmarshal([]byte(e), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
