package job

import (
	"Brightline/internal/pkg/logger"
	"Brightline/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// AnalyticsSummaryJob 定时重算后台统计概览并刷新缓存
type AnalyticsSummaryJob struct {
	blogSvc service.BlogService
	timeout time.Duration
}

func NewAnalyticsSummaryJob(blogSvc service.BlogService) *AnalyticsSummaryJob {
	return &AnalyticsSummaryJob{
		blogSvc: blogSvc,
		timeout: time.Minute,
	}
}

func (s *AnalyticsSummaryJob) Run() {
	traceID := "job-analytics-" + uuid.NewString()
	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), traceID), s.timeout)
	defer cancel()

	start := time.Now()
	summary, err := s.blogSvc.RefreshAnalyticsSummary(ctx)
	if err != nil {
		log.ErrorContext(ctx, "refresh analytics summary error", "err", err)
		return
	}

	log.InfoContext(ctx, "analytics summary refreshed",
		"total_views", summary.TotalViews,
		"top_posts", len(summary.TopPosts),
		"cost", time.Since(start))
}
