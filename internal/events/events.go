package events

import (
	"fmt"
	"sync"

	console "webeye/internal/utils/logger"
)

var log = console.New("EVENTS")

// ResourceStatusChanged is emitted when a check sweep changes a resource's
// status. Its payload is a StatusChange.
const ResourceStatusChanged = "resources.status_changed"

// StatusChange is the payload of ResourceStatusChanged.
type StatusChange struct {
	ResourceUUID string
	ResourceName string
	From         string
	To           string
}

type EventHandler func(interface{})

type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

var defaultBus = NewEventBus()

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

// On registers a handler for an event
func (bus *EventBus) On(event string, handler EventHandler) {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.handlers[event] = append(bus.handlers[event], handler)
	log.Info("Registered handler for event: %s", event)
}

// Reset drops every handler.
func (bus *EventBus) Reset() {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	bus.handlers = make(map[string][]EventHandler)
}

// Emit triggers an event with the given data. Handlers run on their own
// goroutines.
func (bus *EventBus) Emit(event string, data interface{}) {
	bus.mu.RLock()
	handlers, exists := bus.handlers[event]
	bus.mu.RUnlock()

	if !exists {
		return
	}

	log.Debug("Emitting event: %s", event)

	for _, handler := range handlers {
		go func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					_ = log.Error("Panic in event handler for %s", fmt.Errorf("panic: %v", r), event)
				}
			}()
			h(data)
		}(handler)
	}
}

// On Global event functions that use the default event bus
func On(event string, handler EventHandler) {
	defaultBus.On(event, handler)
}

func Emit(event string, data interface{}) {
	defaultBus.Emit(event, data)
}

// Reset clears the default bus.
func Reset() {
	defaultBus.Reset()
}

// Default returns the process-wide bus used by On and Emit.
func Default() *EventBus {
	return defaultBus
}
