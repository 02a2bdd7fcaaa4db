// Package worker implements background refresh of cached rate tables.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"converterservice/internal/service"
)

// TaskTypeRefreshRates identifies the rate table refresh task.
const TaskTypeRefreshRates = "rates:refresh"

// RefreshPayload is the payload of a rate table refresh task.
type RefreshPayload struct {
	Base string `json:"base"`
}

// NewRefreshHandler returns a function to handle rate table refresh tasks.
// Requesting the table re-fetches it only when the cached copy has expired.
func NewRefreshHandler(svc service.ConverterServiceInterface, logger *zap.SugaredLogger) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload RefreshPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			logger.Errorw("Invalid task payload", "type", t.Type(), "error", err)
			return nil
		}

		snap, err := svc.Table(ctx, payload.Base)
		if err != nil {
			logger.Errorw("Rate refresh failed", "base", payload.Base, "error", err)
			return err
		}

		logger.Infow("Rate table refreshed",
			"base", snap.Base,
			"currencies", len(snap.Rates),
			"stale", snap.Stale,
		)
		return nil
	}
}

// AsynqEnqueuer enqueues refresh tasks with the configured retry and timeout limits.
type AsynqEnqueuer struct {
	client   *asynq.Client
	maxRetry int
	timeout  time.Duration
}

// NewAsynqEnqueuer creates a new AsynqEnqueuer with the given client, retry limit, and task timeout duration.
func NewAsynqEnqueuer(client *asynq.Client, maxRetry int, timeout time.Duration) *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client:   client,
		maxRetry: maxRetry,
		timeout:  timeout,
	}
}

// EnqueueRefreshTask enqueues a refresh task for the base currency. A task for
// the same base that is still queued or running is not enqueued again.
func (e *AsynqEnqueuer) EnqueueRefreshTask(ctx context.Context, base string) error {
	data, err := json.Marshal(RefreshPayload{Base: base})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeRefreshRates, data,
		asynq.MaxRetry(e.maxRetry),
		asynq.Timeout(e.timeout),
		asynq.Unique(e.timeout),
	)

	if _, err = e.client.EnqueueContext(ctx, task); err != nil {
		if errors.Is(err, asynq.ErrDuplicateTask) {
			return nil
		}
		return err
	}
	return nil
}
