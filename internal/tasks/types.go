package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"webeye/internal/events"
)

// Task Types
const (
	TaskTypeChecksSweep       = "checks:sweep"
	TaskTypeNodeCheck         = "checks:node"
	TaskTypeNotifySubscribers = "notify:subscribers"
)

// Task Queues
const (
	QueueCritical = "critical" // For time-sensitive tasks like notifications
	QueueDefault  = "default"  // For regular tasks like node probes
	QueueLow      = "low"      // For background tasks like the sweep
)

// Task Timeouts
const (
	TimeoutShort  = 1 * time.Minute
	TimeoutMedium = 5 * time.Minute
)

// Task Retry Settings
const (
	RetryDefault = 3
	RetryMin     = 1
)

type NodeCheckPayload struct {
	NodeUUID string `json:"node_uuid"`
}

type NotifyPayload struct {
	ResourceUUID string `json:"resource_uuid"`
	ResourceName string `json:"resource_name"`
	From         string `json:"from"`
	To           string `json:"to"`
}

func NewChecksSweepTask() *asynq.Task {
	return asynq.NewTask(TaskTypeChecksSweep, nil,
		asynq.Queue(QueueLow),
		asynq.MaxRetry(RetryMin),
		asynq.Timeout(TimeoutMedium),
	)
}

func NewNodeCheckTask(nodeUUID string) (*asynq.Task, error) {
	payload, err := json.Marshal(NodeCheckPayload{NodeUUID: nodeUUID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeNodeCheck, payload,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(RetryMin),
		asynq.Timeout(TimeoutShort),
	), nil
}

func NewNotifyTask(change events.StatusChange) (*asynq.Task, error) {
	payload, err := json.Marshal(NotifyPayload{
		ResourceUUID: change.ResourceUUID,
		ResourceName: change.ResourceName,
		From:         change.From,
		To:           change.To,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeNotifySubscribers, payload,
		asynq.Queue(QueueCritical),
		asynq.MaxRetry(RetryDefault),
		asynq.Timeout(TimeoutShort),
	), nil
}
