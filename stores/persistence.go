package stores

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// 每个 key 存一个完整的 JSON blob，对应移动端 AsyncStorage 的存储模型
const (
	AuthStorageKey   = "fruitwala:auth"
	CartStorageKey   = "fruitwala:cart"
	OrdersStorageKey = "fruitwala:orders"
)

// BlobStore 持久化接口：整 blob 读写，尽力而为
type BlobStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type RedisBlobStore struct {
	client *redis.Client
}

func NewRedisBlobStore(url string) (*RedisBlobStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if cmd := client.Ping(context.Background()); cmd.Err() != nil {
		return nil, cmd.Err()
	}

	return &RedisBlobStore{client: client}, nil
}

func (s *RedisBlobStore) Save(ctx context.Context, key string, data []byte) error {
	return s.client.Set(ctx, key, data, 0).Err()
}

// Load 缺失的 key 返回 (nil, nil)，当作无数据处理
func (s *RedisBlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (s *RedisBlobStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisBlobStore) Close() error {
	return s.client.Close()
}

// persistAsync 写失败只记日志，不影响内存状态
func persistAsync(blobs BlobStore, key string, data []byte) {
	if blobs == nil {
		return
	}
	go func() {
		if err := blobs.Save(context.Background(), key, data); err != nil {
			log.Error().Err(err).Str("key", key).Msg("Failed to persist blob")
		}
	}()
}

func deleteAsync(blobs BlobStore, key string) {
	if blobs == nil {
		return
	}
	go func() {
		if err := blobs.Delete(context.Background(), key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("Failed to delete blob")
		}
	}()
}

func loadBlob(blobs BlobStore, key string) []byte {
	if blobs == nil {
		return nil
	}
	data, err := blobs.Load(context.Background(), key)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to load blob")
		return nil
	}
	return data
}
