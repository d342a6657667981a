package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/crm-console/internal/view"
	"github.com/vmihailenco/msgpack/v5"
)

type redisStore struct {
	client     *redis.Client
	timeToLive time.Duration
}

// NewRedisStore builds Store which keeps view models in redis. Every save prolongs session.
func NewRedisStore(client *redis.Client, timeToLive time.Duration) Store {
	return &redisStore{client: client, timeToLive: timeToLive}
}

func (r *redisStore) FindLanding(ctx context.Context, sid string) (*view.Landing, error) {
	raw, err := r.find(ctx, key(sid, screenLanding))
	if err != nil || raw == nil {
		return nil, err
	}
	return decodeLanding(raw)
}

func (r *redisStore) SaveLanding(ctx context.Context, sid string, l *view.Landing) error {
	return r.save(ctx, key(sid, screenLanding), l)
}

func (r *redisStore) FindDashboard(ctx context.Context, sid string) (*view.Dashboard, error) {
	raw, err := r.find(ctx, key(sid, screenDashboard))
	if err != nil || raw == nil {
		return nil, err
	}
	return decodeDashboard(raw)
}

func (r *redisStore) SaveDashboard(ctx context.Context, sid string, d *view.Dashboard) error {
	return r.save(ctx, key(sid, screenDashboard), d)
}

func (r *redisStore) find(ctx context.Context, k string) ([]byte, error) {
	res, err := r.client.Get(ctx, k).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (r *redisStore) save(ctx context.Context, k string, v any) error {
	encoded, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}

	if _, err := r.client.Set(ctx, k, encoded, r.timeToLive).Result(); err != nil {
		return err
	}
	return nil
}
