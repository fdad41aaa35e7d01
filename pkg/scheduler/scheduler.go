package scheduler

import (
	"context"
	"time"

	"github.com/ysEthan/magic-sync/pkg/log"

	"github.com/sourcegraph/conc/panics"
	"go.uber.org/zap"
)

type Job func(ctx context.Context) error

// Interval 按固定间隔执行任务，上一次没跑完时下一个 tick 直接跳过
type Interval struct {
	Name     string
	Every    time.Duration
	Job      Job
	RunFirst bool
}

func NewInterval(name string, every time.Duration, job Job) *Interval {
	return &Interval{Name: name, Every: every, Job: job}
}

// Run 阻塞直到 ctx 取消
func (s *Interval) Run(ctx context.Context) error {
	log.L.Info("scheduler start", zap.String("job", s.Name), zap.Duration("every", s.Every))

	if s.RunFirst {
		s.runOnce(ctx)
	}

	ticker := time.NewTicker(s.Every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.L.Info("scheduler stop", zap.String("job", s.Name))
			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Interval) runOnce(ctx context.Context) {
	start := time.Now()

	var err error
	var pc panics.Catcher
	pc.Try(func() { err = s.Job(ctx) })

	if r := pc.Recovered(); r != nil {
		log.L.Error("scheduled job panic", zap.String("job", s.Name), zap.String("panic", r.String()))
		return
	}
	if err != nil {
		log.L.Warn("scheduled job failed", zap.String("job", s.Name), zap.Error(err))
		return
	}
	log.L.Info("scheduled job done", zap.String("job", s.Name), zap.Duration("cost", time.Since(start)))
}
