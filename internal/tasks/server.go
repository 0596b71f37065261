package tasks

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"webeye/internal/config"
	"webeye/internal/utils/logger"
)

var queues = map[string]int{
	QueueCritical: 6, // notifications
	QueueDefault:  3, // node probes
	QueueLow:      1, // sweeps
}

// Server handles task processing
type Server struct {
	server      *asynq.Server
	handler     *TaskHandler
	concurrency int
	logger      *logger.Logger
}

// NewServer creates a new task processing server
func NewServer(cfg config.RedisConfig, concurrency int, handler *TaskHandler, logger *logger.Logger) *Server {
	if concurrency <= 0 {
		concurrency = 10
	}

	server := asynq.NewServer(
		redisClientOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues:      queues,
			// higher priority queues drain first
			StrictPriority: true,
		},
	)

	return &Server{
		server:      server,
		handler:     handler,
		concurrency: concurrency,
		logger:      logger,
	}
}

// Mux returns a ServeMux with every task type registered.
func (s *Server) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	s.handler.Register(mux)
	return mux
}

// Start starts the task processing server
func (s *Server) Start(_ context.Context) error {
	s.logger.Info("starting task processing server concurrency %d queues %v", s.concurrency, queues)

	if err := s.server.Start(s.Mux()); err != nil {
		return fmt.Errorf("failed to start task server: %w", err)
	}

	return nil
}

// Stop stops the task processing server
func (s *Server) Stop() {
	s.server.Stop()
	s.logger.Info("task processing server stopped")
}

// Shutdown gracefully shuts down the task processing server
func (s *Server) Shutdown() {
	s.logger.Info("shutting down task processing server")
	s.server.Shutdown()
}
