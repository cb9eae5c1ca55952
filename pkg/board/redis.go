package board

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/dropgrid/pkg/errors"
	"github.com/matzehuels/dropgrid/pkg/observability"
)

// DefaultRedisPrefix namespaces board keys.
const DefaultRedisPrefix = "dropgrid:board:"

// RedisStore keeps boards as JSON documents in Redis.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore wraps an existing client. An empty prefix uses
// DefaultRedisPrefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

// DialRedis connects to addr and checks the connection with PING.
func DialRedis(ctx context.Context, addr, prefix string) (*RedisStore, error) {
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect to redis at %s", addr)
	}
	return NewRedisStore(client, prefix), nil
}

func (s *RedisStore) key(name string) string { return s.prefix + name }

func (s *RedisStore) Load(ctx context.Context, name string) (b *Board, err error) {
	start := time.Now()
	defer func() { observability.Store().OnLoad(ctx, BackendRedis, name, time.Since(start), err) }()

	if err := errors.ValidateBoardName(name); err != nil {
		return nil, err
	}
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err == redis.Nil {
		return nil, errors.New(errors.ErrCodeNotFound, "board %q not found", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "get board %q", name)
	}
	return Unmarshal(data, FormatJSON)
}

func (s *RedisStore) Save(ctx context.Context, b *Board) (err error) {
	start := time.Now()
	size := 0
	defer func() { observability.Store().OnSave(ctx, BackendRedis, b.Name, size, time.Since(start), err) }()

	if err := b.Validate(); err != nil {
		return err
	}
	data, err := Marshal(b, FormatJSON)
	if err != nil {
		return err
	}
	size = len(data)
	if err := s.client.Set(ctx, s.key(b.Name), data, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "set board %q", b.Name)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateBoardName(name); err != nil {
		return err
	}
	if err := s.client.Del(ctx, s.key(name)).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete board %q", name)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "scan boards")
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}

func (s *RedisStore) Close() error { return s.client.Close() }

var _ Store = (*RedisStore)(nil)
