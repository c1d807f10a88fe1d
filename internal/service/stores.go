package service

import (
	"context"
	"io"
	"time"
)

// KVStore 服务层依赖的键值存储能力，由 redis.KVStore 实现
type KVStore interface {
	GetValue(ctx context.Context, key string) (string, error)
	SetValue(ctx context.Context, key string, value interface{}) error
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	HSet(ctx context.Context, key string, field string, value interface{}) error
}

// LegacySource 旧版文章数据源，由 redis.LegacyStore 实现
type LegacySource interface {
	LoadPosts(ctx context.Context) (string, error)
	MigrationCompleted(ctx context.Context) (bool, error)
	MarkMigrationCompleted(ctx context.Context) error
}

// ObjectStore 对象存储，由 minio.ObjectStore 实现
type ObjectStore interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	GetPublicURL(objectName string) string
}
