// Package statestore keeps the opaque state values handed out with OAuth
// authorize redirects until the callback redeems them. A state can be taken
// once.
package statestore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrUnknownState = errors.New("unknown or expired OAuth state")

type Store interface {
	Put(ctx context.Context, state, value string, ttl time.Duration) error
	Take(ctx context.Context, state string) (string, error)
	Ping(ctx context.Context) error
}

const keyPrefix = "chimpgate:oauth:state:"

type Redis struct {
	client *redis.Client
}

func NewRedis(addr, password string, db int) *Redis {
	return &Redis{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// NewRedisURL connects using a redis:// URL.
func NewRedisURL(uri string) (*Redis, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Redis{client: redis.NewClient(opts)}, nil
}

func (r *Redis) Put(ctx context.Context, state, value string, ttl time.Duration) error {
	return r.client.Set(ctx, keyPrefix+state, value, ttl).Err()
}

func (r *Redis) Take(ctx context.Context, state string) (string, error) {
	val, err := r.client.GetDel(ctx, keyPrefix+state).Result()
	if err == redis.Nil {
		return "", ErrUnknownState
	} else if err != nil {
		return "", err
	}
	return val, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}

type entry struct {
	value   string
	expires time.Time
}

// Memory is the single-process Store used by the CLI and in tests.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry), now: time.Now}
}

func (m *Memory) Put(_ context.Context, state, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for k, e := range m.entries {
		if !e.expires.IsZero() && now.After(e.expires) {
			delete(m.entries, k)
		}
	}
	var expires time.Time
	if ttl > 0 {
		expires = now.Add(ttl)
	}
	m.entries[state] = entry{value: value, expires: expires}
	return nil
}

func (m *Memory) Take(_ context.Context, state string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[state]
	if !ok {
		return "", ErrUnknownState
	}
	delete(m.entries, state)
	if !e.expires.IsZero() && m.now().After(e.expires) {
		return "", ErrUnknownState
	}
	return e.value, nil
}

func (m *Memory) Ping(context.Context) error { return nil }
