package tasks

import (
	"context"

	"webeye/internal/events"
	"webeye/internal/utils/logger"
)

// SubscribeStatusChanges enqueues a notification task for every resource
// status change emitted on bus.
func SubscribeStatusChanges(bus *events.EventBus, enqueuer Enqueuer) {
	log := logger.New("TASKS")

	bus.On(events.ResourceStatusChanged, func(data interface{}) {
		change, ok := data.(events.StatusChange)
		if !ok {
			log.Warn("Unexpected payload for %s: %T", events.ResourceStatusChanged, data)
			return
		}

		task, err := NewNotifyTask(change)
		if err != nil {
			_ = log.Error("failed to build notify task for %s", err, change.ResourceName)
			return
		}
		if _, err := enqueuer.EnqueueContext(context.Background(), task); err != nil {
			_ = log.Error("failed to enqueue notify task for %s", err, change.ResourceName)
		}
	})
}
