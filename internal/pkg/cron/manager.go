package cron

import (
	"Brightline/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine               *cron.Cron
	analyticsSummarySpec string
	analyticsSummaryJob  *job.AnalyticsSummaryJob
}

func NewCronManager(analyticsSummarySpec string, analyticsSummaryJob *job.AnalyticsSummaryJob) *Manager {
	return &Manager{
		engine:               cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		analyticsSummarySpec: analyticsSummarySpec,
		analyticsSummaryJob:  analyticsSummaryJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.analyticsSummarySpec, s.analyticsSummaryJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started", "jobs", len(s.engine.Entries()))
	s.engine.Start()
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	log.Info("Cron engine stopping")
	<-s.engine.Stop().Done()
}
