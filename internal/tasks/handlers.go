package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hibiken/asynq"
	"gorm.io/datatypes"

	"webeye/internal/models"
	"webeye/internal/services"
	"webeye/internal/utils/logger"
)

// CheckStore persists probe results and derives resource status from them.
type CheckStore interface {
	Record(ctx context.Context, check *models.Check) error
	ResourceStatus(ctx context.Context, resourceID string) (models.Status, bool, error)
}

// SubscriberDirectory resolves who to notify about a resource.
type SubscriberDirectory interface {
	ActiveSubscriberChats(ctx context.Context, resourceID string) ([]int64, error)
}

// Notifier delivers a text message to a chat.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// Limiter throttles the node probes a sweep releases at once.
type Limiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
}

// HandlerDeps wires a TaskHandler. Limiter and Notifier are optional.
type HandlerDeps struct {
	Resources   services.ResourceRepository
	Checks      CheckStore
	Subscribers SubscriberDirectory
	Notifier    Notifier
	Enqueuer    Enqueuer
	Limiter     Limiter
	HTTPClient  *http.Client
	Timeout     time.Duration
	// Window is the limiter window; probes over the limit are delayed by
	// whole windows.
	Window time.Duration
}

// TaskHandler runs the monitoring and notification tasks.
type TaskHandler struct {
	deps   HandlerDeps
	logger *logger.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(deps HandlerDeps) *TaskHandler {
	if deps.HTTPClient == nil {
		deps.HTTPClient = &http.Client{}
	}
	if deps.Timeout <= 0 {
		deps.Timeout = 10 * time.Second
	}
	if deps.Window <= 0 {
		deps.Window = time.Minute
	}
	return &TaskHandler{
		deps:   deps,
		logger: logger.New("task_handler"),
	}
}

// Register adds every task handler to mux.
func (h *TaskHandler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskTypeChecksSweep, h.HandleChecksSweep)
	mux.HandleFunc(TaskTypeNodeCheck, h.HandleNodeCheck)
	mux.HandleFunc(TaskTypeNotifySubscribers, h.HandleNotifySubscribers)
}

// HandleChecksSweep enqueues one probe per live node. Probes the limiter
// rejects are spread over the following windows.
func (h *TaskHandler) HandleChecksSweep(ctx context.Context, _ *asynq.Task) error {
	nodes, err := h.deps.Resources.ListAllNodes(ctx)
	if err != nil {
		return h.logger.Error("failed to list nodes", err)
	}

	admitted, deferred := 0, 0
	for _, node := range nodes {
		task, err := NewNodeCheckTask(node.UUID)
		if err != nil {
			return h.logger.Error("failed to build probe task for %s", err, node.UUID)
		}

		var opts []asynq.Option
		if h.allow(ctx) {
			admitted++
		} else {
			perWindow := max(admitted, 1)
			opts = append(opts, asynq.ProcessIn(h.deps.Window*time.Duration(1+deferred/perWindow)))
			deferred++
		}

		if _, err := h.deps.Enqueuer.EnqueueContext(ctx, task, opts...); err != nil {
			return h.logger.Error("failed to enqueue probe for %s", err, node.UUID)
		}
	}

	h.logger.Info("Sweep enqueued %d probes (%d deferred)", len(nodes), deferred)
	return nil
}

func (h *TaskHandler) allow(ctx context.Context) bool {
	if h.deps.Limiter == nil {
		return true
	}
	ok, err := h.deps.Limiter.Allow(ctx, "sweep")
	if err != nil {
		h.logger.Warn("Probe limiter unavailable: %v", err)
		return true
	}
	return ok
}

// HandleNodeCheck probes one node, stores the result and recomputes the
// status of its resource.
func (h *TaskHandler) HandleNodeCheck(ctx context.Context, t *asynq.Task) error {
	var payload NodeCheckPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
	}

	node, err := h.deps.Resources.GetNode(ctx, payload.NodeUUID)
	if errors.Is(err, services.ErrNotFound) {
		h.logger.Debug("Node %s is gone, skipping probe", payload.NodeUUID)
		return nil
	}
	if err != nil {
		return err
	}

	check := h.probe(ctx, node)
	if err := h.deps.Checks.Record(ctx, check); err != nil {
		return err
	}

	status, ok, err := h.deps.Checks.ResourceStatus(ctx, node.ResourceUUID)
	if err != nil {
		return h.logger.Error("failed to compute status of %s", err, node.ResourceUUID)
	}
	if !ok {
		return nil
	}

	if _, err := h.deps.Resources.SetStatus(ctx, node.ResourceUUID, status); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// probe issues a GET against the node url. Any 2xx or 3xx answer is ok.
func (h *TaskHandler) probe(ctx context.Context, node *models.ResourceNode) *models.Check {
	check := &models.Check{
		NodeUUID:     node.UUID,
		ResourceUUID: node.ResourceUUID,
	}

	ctx, cancel := context.WithTimeout(ctx, h.deps.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, node.URL, nil)
	if err != nil {
		check.Error = err.Error()
		return check
	}
	req.Header.Set("User-Agent", "webeye-probe/1.0")

	start := time.Now()
	resp, err := h.deps.HTTPClient.Do(req)
	check.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		check.Error = err.Error()
		return check
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	check.Meta = datatypes.JSONMap{
		"final_url":    resp.Request.URL.String(),
		"content_type": resp.Header.Get("Content-Type"),
	}
	if server := resp.Header.Get("Server"); server != "" {
		check.Meta["server"] = server
	}

	check.StatusCode = resp.StatusCode
	check.OK = resp.StatusCode >= 200 && resp.StatusCode < 400
	if !check.OK {
		check.Error = resp.Status
	}

	h.logger.Debug("Probed %s: %d in %dms", node.URL, check.StatusCode, check.LatencyMS)
	return check
}

// HandleNotifySubscribers sends a status change to every active subscriber
// with a linked chat. Delivery failures are logged, not retried, so that
// chats already notified do not get duplicates.
func (h *TaskHandler) HandleNotifySubscribers(ctx context.Context, t *asynq.Task) error {
	var payload NotifyPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
	}

	if h.deps.Notifier == nil {
		h.logger.Debug("No notifier configured, dropping status change of %s", payload.ResourceName)
		return nil
	}

	chats, err := h.deps.Subscribers.ActiveSubscriberChats(ctx, payload.ResourceUUID)
	if err != nil {
		return h.logger.Error("failed to load subscribers of %s", err, payload.ResourceUUID)
	}

	text := StatusMessage(payload)
	sent := 0
	for _, chat := range chats {
		if err := h.deps.Notifier.Notify(ctx, chat, text); err != nil {
			h.logger.Warn("Failed to notify chat %d: %v", chat, err)
			continue
		}
		sent++
	}

	h.logger.Info("Notified %d/%d subscribers of %s", sent, len(chats), payload.ResourceName)
	return nil
}

// StatusMessage renders the notification text for a status change.
func StatusMessage(p NotifyPayload) string {
	return fmt.Sprintf("%s is now %s (was %s)", p.ResourceName, p.To, p.From)
}
