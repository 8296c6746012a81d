package caching

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "mainthub:"

type CacheService interface {
	// List snapshots, stored as the JSON the API serves for GET /v1/<kind>.
	// dependsOn names the tables whose rows are embedded in the snapshot.
	GetList(ctx context.Context, kind string) ([]byte, bool, error)
	SetList(ctx context.Context, kind string, payload []byte, ttl time.Duration, dependsOn ...string) error

	// InvalidateKind drops the kind's snapshot and every snapshot embedding rows of table
	InvalidateKind(ctx context.Context, kind, table string) error
	InvalidateAllCache(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client redis.UniversalClient
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port as well as host:port
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		slog.Warn("redis ping failed on initialization", "addr", parsedAddr, "error", pingErr)
	} else {
		slog.Debug("redis connection established", "addr", parsedAddr)
	}

	return &redisCacheService{client: client}
}

// NewCacheServiceWithClient wraps an existing client.
func NewCacheServiceWithClient(client redis.UniversalClient) CacheService {
	return &redisCacheService{client: client}
}

func listKey(kind string) string {
	return fmt.Sprintf("%slist:%s", keyPrefix, kind)
}

func dependentsKey(table string) string {
	return fmt.Sprintf("%sdeps:%s", keyPrefix, table)
}

func (r *redisCacheService) GetList(ctx context.Context, kind string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, listKey(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil // cache miss
		}
		return nil, false, err
	}
	return data, true, nil
}

func (r *redisCacheService) SetList(ctx context.Context, kind string, payload []byte, ttl time.Duration, dependsOn ...string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, listKey(kind), payload, ttl)
		for _, table := range dependsOn {
			pipe.SAdd(ctx, dependentsKey(table), kind)
		}
		return nil
	})
	return err
}

func (r *redisCacheService) InvalidateKind(ctx context.Context, kind, table string) error {
	dependents, err := r.client.SMembers(ctx, dependentsKey(table)).Result()
	if err != nil {
		return err
	}
	keys := []string{listKey(kind)}
	for _, dependent := range dependents {
		keys = append(keys, listKey(dependent))
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *redisCacheService) InvalidateAllCache(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
