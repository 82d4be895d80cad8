package scheduler

import (
	"context"
	"fmt"
	"log"

	"CoinDigest/internal/pipeline"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the daemon-mode cron tasks.
type Scheduler struct {
	Cron     *cron.Cron
	Pipeline *pipeline.Pipeline
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, p *pipeline.Pipeline) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Pipeline: p,
		Ctx:      ctx,
	}
}

// RegisterAll registers the daily chart and weekly slides tasks.
func (s *Scheduler) RegisterAll(chartCron, slidesCron string) error {
	if _, err := s.Cron.AddFunc(chartCron, s.chartTask); err != nil {
		return fmt.Errorf("register chart task: %w", err)
	}
	if _, err := s.Cron.AddFunc(slidesCron, s.slidesTask); err != nil {
		return fmt.Errorf("register slides task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunChartNow executes the chart task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunChartNow() {
	s.chartTask()
}

// RunSlidesNow executes the slides task immediately.
func (s *Scheduler) RunSlidesNow() {
	s.slidesTask()
}

func (s *Scheduler) chartTask() {
	log.Println("[INFO] running chart task")
	if err := s.Pipeline.RunChart(s.Ctx); err != nil {
		log.Printf("[ERROR] chart task: %v", err)
	}
}

func (s *Scheduler) slidesTask() {
	log.Println("[INFO] running slides task")
	if err := s.Pipeline.RunSlides(s.Ctx); err != nil {
		log.Printf("[ERROR] slides task: %v", err)
	}
}
