package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"webeye/internal/config"
	"webeye/internal/utils/logger"
)

// Enqueuer is the part of asynq.Client the handlers use.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskClient enqueues tasks and owns the Redis connection shared with the
// rate limiters.
type TaskClient struct {
	client      *asynq.Client
	logger      *logger.Logger
	redisClient *redis.Client
}

func redisClientOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewTaskClient creates a new TaskClient with the given Redis configuration
func NewTaskClient(cfg config.RedisConfig) *TaskClient {
	return &TaskClient{
		client: asynq.NewClient(redisClientOpt(cfg)),
		redisClient: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		logger: logger.New("TASKS"),
	}
}

func (c *TaskClient) GetClient() *asynq.Client {
	return c.client
}

func (c *TaskClient) RedisClient() *redis.Client {
	return c.redisClient
}

// Ping checks that Redis is reachable.
func (c *TaskClient) Ping(ctx context.Context) error {
	if err := c.redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close closes the asynq client and the Redis connection.
func (c *TaskClient) Close() error {
	return errors.Join(c.client.Close(), c.redisClient.Close())
}
