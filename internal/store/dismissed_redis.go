package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const dismissedKey = "lifeboard:alerts:dismissed"

// RedisDismissalStore keeps the dismissal set in Redis so every device
// sees the same acknowledged alerts. Set replaces the whole value:
// last write wins, concurrent writers are not serialized.
type RedisDismissalStore struct {
	client *redis.Client
}

func NewRedisDismissalStore(client *redis.Client) *RedisDismissalStore {
	return &RedisDismissalStore{client: client}
}

func (s *RedisDismissalStore) Get(ctx context.Context) (map[string]struct{}, error) {
	members, err := s.client.SMembers(ctx, dismissedKey).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(members))
	for _, m := range members {
		out[m] = struct{}{}
	}
	return out, nil
}

func (s *RedisDismissalStore) Set(ctx context.Context, ids map[string]struct{}) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, dismissedKey)
	if len(ids) > 0 {
		members := make([]any, 0, len(ids))
		for id := range ids {
			members = append(members, id)
		}
		pipe.SAdd(ctx, dismissedKey, members...)
	}
	_, err := pipe.Exec(ctx)
	return err
}
