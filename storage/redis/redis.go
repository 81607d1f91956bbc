// Package redis implements a Backend on redis. Useful when the durable
// tier is shared between replicas but an object store is not available.
// Keys:
//
//	layer:{view}:{category}:{sku}.{ext}
//	composite:{key}
//	json:{key}
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/layersmith/layer"
	st "github.com/unkn0wn-root/layersmith/storage"
)

var ErrNilClient = errors.New("redis storage: nil client")

type Storage struct {
	rdb         goredis.UniversalClient
	closeClient bool
}

var _ st.Backend = (*Storage)(nil)

type Config struct {
	Client      goredis.UniversalClient
	CloseClient bool // set true only if this backend exclusively owns the client
}

func New(cfg Config) (*Storage, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Storage{rdb: cfg.Client, closeClient: cfg.CloseClient}, nil
}

func (s *Storage) FetchLayer(ctx context.Context, category, sku string, view layer.View, extension string) ([]byte, bool, error) {
	return s.get(ctx, "layer:"+view.String()+":"+category+":"+sku+"."+extension)
}

func (s *Storage) FetchCached(ctx context.Context, key string) ([]byte, bool, error) {
	return s.get(ctx, "composite:"+key)
}

// SaveToCache stores the composite without expiry; composites are
// immutable and never invalidated.
func (s *Storage) SaveToCache(ctx context.Context, key string, data []byte) error {
	return s.rdb.Set(ctx, "composite:"+key, data, 0).Err()
}

func (s *Storage) FetchCachedJSON(ctx context.Context, key string) (string, bool, error) {
	data, ok, err := s.get(ctx, "json:"+key)
	if err != nil || !ok {
		return "", false, err
	}
	return string(data), true, nil
}

func (s *Storage) get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

// Close releases the underlying redis client only when this backend owns
// it. Safe to call multiple times; repeated calls become no-ops.
func (s *Storage) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}
