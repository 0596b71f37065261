package tasks

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"webeye/internal/config"
	"webeye/internal/utils/logger"
)

// Scheduler handles periodic task scheduling
type Scheduler struct {
	scheduler *asynq.Scheduler
	schedule  string
	logger    *logger.Logger
}

// NewScheduler creates a scheduler that enqueues a checks sweep on schedule.
func NewScheduler(cfg config.RedisConfig, schedule string, logger *logger.Logger) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisClientOpt(cfg),
		&asynq.SchedulerOpts{
			Location: time.UTC,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		schedule:  schedule,
		logger:    logger,
	}
}

// Start registers the periodic tasks and blocks until Stop is called.
func (s *Scheduler) Start() error {
	if err := s.registerTasks(); err != nil {
		return fmt.Errorf("failed to register tasks: %w", err)
	}

	s.logger.Info("starting task scheduler")
	return s.scheduler.Run()
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.scheduler.Shutdown()
	s.logger.Info("task scheduler stopped")
}

// registerTasks registers all periodic tasks
func (s *Scheduler) registerTasks() error {
	if err := ValidateSchedule(s.schedule); err != nil {
		return err
	}

	entryID, err := s.scheduler.Register(s.schedule, NewChecksSweepTask())
	if err != nil {
		return fmt.Errorf("failed to register checks sweep: %w", err)
	}

	next, _ := NextRun(s.schedule, time.Now().UTC())
	s.logger.Info("registered checks sweep %s (%s), next run %s", s.schedule, entryID, next.Format(time.RFC3339))
	return nil
}
