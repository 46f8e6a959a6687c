package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher is a job body; the weather service satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Scheduler struct {
	Cron    *cron.Cron
	Weather Refresher
	Ctx     context.Context
	Timeout time.Duration
}

func NewScheduler(ctx context.Context, w Refresher) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Weather: w,
		Ctx:     ctx,
		Timeout: 30 * time.Second,
	}
}

func (s *Scheduler) RegisterAll(weatherCron string) error {
	if _, err := s.Cron.AddFunc(weatherCron, s.weatherTask); err != nil {
		return fmt.Errorf("register weather refresh: %w", err)
	}
	return nil
}

func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[scheduler] started")
}

// Stop waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[scheduler] stopped")
}

// RunWeatherNow refreshes immediately, e.g. at boot.
func (s *Scheduler) RunWeatherNow() error { return s.refresh() }

func (s *Scheduler) weatherTask() {
	if err := s.refresh(); err != nil {
		log.Printf("[scheduler] weather refresh failed: %v", err)
	}
}

func (s *Scheduler) refresh() error {
	ctx, cancel := context.WithTimeout(s.Ctx, s.Timeout)
	defer cancel()
	return s.Weather.Refresh(ctx)
}
