package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const sessionTTL = 7 * 24 * time.Hour

type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to redis and verifies the connection before
// returning the store.
func NewRedisStore(addr, password string, db int) (Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &redisStore{client: client}, nil
}

func sessKey(sid string) string  { return "waib:sess:" + sid }
func flashKey(sid string) string { return "waib:flash:" + sid }

func (s *redisStore) SetUser(ctx context.Context, sid, username string) error {
	key := sessKey(sid)
	if err := s.client.HSet(ctx, key, "user", username).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, sessionTTL).Err()
}

func (s *redisStore) User(ctx context.Context, sid string) (string, error) {
	v, err := s.client.HGet(ctx, sessKey(sid), "user").Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (s *redisStore) ClearUser(ctx context.Context, sid string) error {
	return s.client.HDel(ctx, sessKey(sid), "user").Err()
}

func (s *redisStore) AddFlash(ctx context.Context, sid string, f Flash) error {
	b, err := json.Marshal(f)
	if err != nil {
		return err
	}
	key := flashKey(sid)
	if err := s.client.RPush(ctx, key, b).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, sessionTTL).Err()
}

func (s *redisStore) Flashes(ctx context.Context, sid string) ([]Flash, error) {
	key := flashKey(sid)
	pipe := s.client.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	raw, err := items.Result()
	if err != nil {
		return nil, err
	}
	var out []Flash
	for _, r := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(r), &f); err != nil {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}
