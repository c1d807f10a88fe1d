package redis

import (
	"Brightline/internal/pkg/consts"
	"context"
	"time"
)

// LegacyStore 旧版本地存储数据，文章以 JSON 数组原样保存
type LegacyStore struct {
	kv *KVStore
}

func NewLegacyStore(kv *KVStore) *LegacyStore {
	return &LegacyStore{kv: kv}
}

// LoadPosts 读取旧版文章 JSON，不存在时返回空串
func (s *LegacyStore) LoadPosts(ctx context.Context) (string, error) {
	return s.kv.GetValue(ctx, consts.LegacyPostsKey)
}

// SavePosts 写入旧版文章 JSON
func (s *LegacyStore) SavePosts(ctx context.Context, blob string) error {
	return s.kv.SetValue(ctx, consts.LegacyPostsKey, blob)
}

// MigrationCompleted 是否已完成迁移
func (s *LegacyStore) MigrationCompleted(ctx context.Context) (bool, error) {
	v, err := s.kv.GetValue(ctx, consts.MigrationCompletedKey)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// MarkMigrationCompleted 记录迁移完成时间，之后的迁移调用直接返回
func (s *LegacyStore) MarkMigrationCompleted(ctx context.Context) error {
	if err := s.kv.SetValue(ctx, consts.MigrationCompletedKey, "true"); err != nil {
		return err
	}
	return s.kv.HSet(ctx, consts.MigrationCompletedKey+":meta", "completed_at", time.Now().UTC().Format(time.RFC3339))
}
