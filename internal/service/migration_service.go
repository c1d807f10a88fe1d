package service

import (
	"Brightline/internal/api/dto"
	"context"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
)

type MigrationService interface {
	Initialize(ctx context.Context) error
	MigrateFromLocalStorage(ctx context.Context) (*dto.MigrationResultDTO, error)
	HasLocalData(ctx context.Context) bool
}

type migrationServiceImpl struct {
	blog   BlogService
	legacy LegacySource
}

func NewMigrationService(blog BlogService, legacy LegacySource) MigrationService {
	return &migrationServiceImpl{
		blog:   blog,
		legacy: legacy,
	}
}

// Initialize 有未迁移的旧数据则迁移，否则在文章库为空时写入示例文章
func (s *migrationServiceImpl) Initialize(ctx context.Context) error {
	completed, err := s.legacy.MigrationCompleted(ctx)
	if err != nil {
		log.WarnContext(ctx, "read migration flag failed", "err", err)
	}

	if s.HasLocalData(ctx) && !completed {
		result, err := s.MigrateFromLocalStorage(ctx)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "legacy posts migrated", "migrated", result.Migrated, "failed", len(result.Errors))
		return nil
	}

	empty, err := s.blog.IsEmpty(ctx)
	if err != nil {
		log.WarnContext(ctx, "count posts failed, skip default posts", "err", err)
		return nil
	}
	if empty {
		return s.blog.InitializeDefaultPosts(ctx)
	}
	return nil
}

// MigrateFromLocalStorage 逐篇导入旧文章，单篇失败不影响其他文章，不回滚
func (s *migrationServiceImpl) MigrateFromLocalStorage(ctx context.Context) (*dto.MigrationResultDTO, error) {
	completed, err := s.legacy.MigrationCompleted(ctx)
	if err != nil {
		log.WarnContext(ctx, "read migration flag failed", "err", err)
	}
	if completed {
		return &dto.MigrationResultDTO{Success: true, Migrated: 0}, nil
	}

	posts, err := s.loadLegacyPosts(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.MigrationResultDTO{Success: true}
	for i, legacy := range posts {
		if _, err = s.blog.Create(ctx, fromLegacy(legacy)); err != nil {
			msg := fmt.Sprintf("post %d (%s): %v", i, legacy.Title, err)
			log.WarnContext(ctx, "migrate legacy post failed", "index", i, "title", legacy.Title, "err", err)
			result.Errors = append(result.Errors, msg)
			continue
		}
		result.Migrated++
	}

	if err = s.legacy.MarkMigrationCompleted(ctx); err != nil {
		log.ErrorContext(ctx, "mark migration completed failed", "err", err)
	}
	return result, nil
}

// HasLocalData 存在非空的旧文章数据
func (s *migrationServiceImpl) HasLocalData(ctx context.Context) bool {
	posts, err := s.loadLegacyPosts(ctx)
	if err != nil {
		log.WarnContext(ctx, "load legacy posts failed", "err", err)
		return false
	}
	return len(posts) > 0
}

func (s *migrationServiceImpl) loadLegacyPosts(ctx context.Context) ([]*dto.LegacyPostDTO, error) {
	blob, err := s.legacy.LoadPosts(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(blob) == "" {
		return []*dto.LegacyPostDTO{}, nil
	}

	var posts []*dto.LegacyPostDTO
	if err = json.Unmarshal([]byte(blob), &posts); err != nil {
		return nil, ErrMigrationSourceInvalid
	}
	return posts, nil
}

// fromLegacy 旧数据中的计数不迁移
func fromLegacy(p *dto.LegacyPostDTO) *dto.CreatePostDTO {
	return &dto.CreatePostDTO{
		Title:   p.Title,
		Excerpt: p.Excerpt,
		Content: p.Content,
		Author: dto.AuthorDTO{
			Name:  p.Author.Name,
			Bio:   p.Author.Bio,
			Image: p.Author.Image,
		},
		PublishDate: p.Date,
		ReadTime:    p.ReadTime,
		Category:    categoryName(p.Category),
		Image:       p.Image,
		Tags:        p.Tags,
		Featured:    p.Featured,
		Published:   p.Published,
	}
}
