// File: services/intelligence/contextStore.go
package intelligence

import (
	"context"
	"encoding/json"
	"time"

	"voyago/models"

	"github.com/go-redis/redis/v8"
)

const intentContextPrefix = "intent:ctx:"

// RedisContextStore remembers the last resolved intent per traveler so a
// re-delivered deep link carries the same context identity.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) Get(ctx context.Context, travelerID string) (*models.TripIntent, error) {
	key := intentContextPrefix + travelerID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var intent models.TripIntent
	if err := json.Unmarshal([]byte(data), &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

func (s *RedisContextStore) Set(ctx context.Context, travelerID string, intent *models.TripIntent) error {
	key := intentContextPrefix + travelerID
	b, err := json.Marshal(intent)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *RedisContextStore) Clear(ctx context.Context, travelerID string) error {
	key := intentContextPrefix + travelerID
	return s.client.Del(ctx, key).Err()
}
