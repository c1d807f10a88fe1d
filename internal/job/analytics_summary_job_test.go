package job

import (
	"Brightline/internal/api/dto"
	"Brightline/internal/service"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubBlogService struct {
	service.BlogService
	calls int
	err   error
}

func (s *stubBlogService) RefreshAnalyticsSummary(ctx context.Context) (*dto.AnalyticsSummaryDTO, error) {
	s.calls++
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("job context has no deadline")
	}
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AnalyticsSummaryDTO{TotalViews: 3}, nil
}

func TestAnalyticsSummaryJob_Run(t *testing.T) {
	svc := &stubBlogService{}
	NewAnalyticsSummaryJob(svc).Run()
	assert.Equal(t, 1, svc.calls)

	failing := &stubBlogService{err: errors.New("mongo down")}
	assert.NotPanics(t, NewAnalyticsSummaryJob(failing).Run)
	assert.Equal(t, 1, failing.calls)
}
