package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sharemart/internal/database"
	"sharemart/internal/domain"
	"sharemart/internal/events"
	"sharemart/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const TaskBookingsReport = "bookings_report"

// exportPayload is persisted in ExportTask.Payload as JSON.
type exportPayload struct {
	Reason string `json:"reason"`
}

// Exporter produces the bookings report.
type Exporter interface {
	ExportBookings(ctx context.Context, reason string) error
}

// ExportWorker consumes export_queue tasks and rebuilds the bookings report.
// Tasks are persisted in sqlite first; redis only accelerates delivery, with
// the in-memory channel and the poll loop as fallbacks.
type ExportWorker struct {
	db            *database.DB
	exporter      Exporter
	redis         *redis.Client
	retryPolicy   RetryPolicy
	queue         chan models.ExportTask
	redisQueueKey string
	deadLetterKey string
	pollInterval  time.Duration
	batchSize     int
	logger        *zerolog.Logger
}

// NewExportWorker builds a worker; unset retry fields get the package defaults.
func NewExportWorker(db *database.DB, exporter Exporter, redisClient *redis.Client, retry RetryPolicy, logger *zerolog.Logger) *ExportWorker {
	return &ExportWorker{
		db:            db,
		exporter:      exporter,
		redis:         redisClient,
		retryPolicy:   retry.withDefaults(),
		queue:         make(chan models.ExportTask, models.WorkerQueueSize),
		redisQueueKey: "exports:queue",
		deadLetterKey: "exports:deadletter",
		pollInterval:  2 * time.Second,
		batchSize:     20,
		logger:        logger,
	}
}

// EnqueueExport persists a report task and schedules it via redis or the
// in-memory queue.
func (w *ExportWorker) EnqueueExport(ctx context.Context, reason string) error {
	payloadBytes, err := json.Marshal(exportPayload{Reason: reason})
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	task := models.ExportTask{
		TaskType: TaskBookingsReport,
		Payload:  string(payloadBytes),
		Status:   "pending",
	}
	if err := w.db.CreateExportTask(ctx, &task); err != nil {
		return fmt.Errorf("persist export task: %w", err)
	}

	// Try redis first for durability.
	if w.redis != nil {
		if err := w.pushRedis(ctx, task); err != nil {
			w.logger.Warn().Err(err).Msg("export worker: redis push failed, falling back to memory queue")
		} else {
			return nil
		}
	}

	select {
	case w.queue <- task:
	default:
		w.logger.Warn().Int64("task_id", task.ID).Msg("export worker: memory queue full, task left to polling")
	}
	return nil
}

// BindBookingEvents schedules a report refresh whenever a booking is created
// or decided. The event type doubles as the task reason.
func BindBookingEvents(bus *events.EventBus, scheduler domain.ExportScheduler, logger *zerolog.Logger) {
	for _, eventType := range []string{
		events.EventBookingCreated,
		events.EventBookingApproved,
		events.EventBookingRejected,
	} {
		bus.Subscribe(eventType, func(e *events.Event) error {
			if err := scheduler.EnqueueExport(context.Background(), e.Type); err != nil {
				logger.Error().Err(err).Str("event", e.Type).Msg("failed to enqueue export")
				return err
			}
			return nil
		})
	}
}

// Start launches the main loop; stops when ctx is done.
func (w *ExportWorker) Start(ctx context.Context) {
	w.logger.Info().Msg("export worker started")
	defer w.logger.Info().Msg("export worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if t, ok := w.tryLocalQueue(); ok {
			w.processTask(ctx, &t)
			continue
		}

		if t, ok := w.tryRedis(ctx); ok {
			w.processTask(ctx, &t)
			continue
		}

		tasks, err := w.db.GetPendingExportTasks(ctx, w.batchSize)
		if err != nil {
			w.logger.Error().Err(err).Msg("export worker: fetch pending tasks")
			time.Sleep(w.pollInterval)
			continue
		}
		if len(tasks) == 0 {
			time.Sleep(w.pollInterval)
			continue
		}

		for i := range tasks {
			w.processTask(ctx, &tasks[i])
		}
	}
}

func (w *ExportWorker) tryLocalQueue() (models.ExportTask, bool) {
	select {
	case t := <-w.queue:
		return t, true
	default:
		return models.ExportTask{}, false
	}
}

func (w *ExportWorker) tryRedis(ctx context.Context) (models.ExportTask, bool) {
	if w.redis == nil {
		return models.ExportTask{}, false
	}
	res, err := w.redis.BRPop(ctx, time.Second, w.redisQueueKey).Result()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, redis.Nil) {
			return models.ExportTask{}, false
		}
		w.logger.Error().Err(err).Msg("export worker: redis BRPOP")
		return models.ExportTask{}, false
	}
	if len(res) != 2 {
		return models.ExportTask{}, false
	}
	var task models.ExportTask
	if err := json.Unmarshal([]byte(res[1]), &task); err != nil {
		w.logger.Error().Err(err).Msg("export worker: decode redis task")
		return models.ExportTask{}, false
	}
	return task, true
}

func (w *ExportWorker) processTask(ctx context.Context, task *models.ExportTask) {
	var payload exportPayload
	if err := json.Unmarshal([]byte(task.Payload), &payload); err != nil {
		w.failTask(ctx, task, fmt.Errorf("decode payload: %w", err))
		return
	}

	if task.TaskType != TaskBookingsReport {
		w.failTask(ctx, task, fmt.Errorf("unknown task type: %s", task.TaskType))
		return
	}

	if err := w.exporter.ExportBookings(ctx, payload.Reason); err != nil {
		w.retryOrFail(ctx, task, err)
		return
	}

	if err := w.db.UpdateExportTaskStatus(ctx, task.ID, "completed", "", nil); err != nil {
		w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("export worker: mark completed")
	}
}

func (w *ExportWorker) retryOrFail(ctx context.Context, task *models.ExportTask, cause error) {
	attempt := task.RetryCount + 1
	if attempt >= w.retryPolicy.MaxRetries {
		if err := w.db.UpdateExportTaskStatus(ctx, task.ID, "failed", cause.Error(), nil); err != nil {
			w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("export worker: mark failed")
		}
		w.pushDeadLetter(ctx, task)
		return
	}

	nextTime := time.Now().Add(w.retryPolicy.NextDelay(attempt))
	if err := w.db.UpdateExportTaskStatus(ctx, task.ID, "retry", cause.Error(), &nextTime); err != nil {
		w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("export worker: mark retry")
	}
}

func (w *ExportWorker) failTask(ctx context.Context, task *models.ExportTask, cause error) {
	if err := w.db.UpdateExportTaskStatus(ctx, task.ID, "failed", cause.Error(), nil); err != nil {
		w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("export worker: mark failed")
	}
	w.pushDeadLetter(ctx, task)
}

func (w *ExportWorker) pushRedis(ctx context.Context, task models.ExportTask) error {
	if w.redis == nil {
		return errors.New("redis client is nil")
	}
	data, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return w.redis.LPush(ctx, w.redisQueueKey, data).Err()
}

func (w *ExportWorker) pushDeadLetter(ctx context.Context, task *models.ExportTask) {
	if w.redis == nil {
		return
	}
	data, err := json.Marshal(task)
	if err != nil {
		w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("export worker: encode deadletter")
		return
	}
	if err := w.redis.LPush(ctx, w.deadLetterKey, data).Err(); err != nil {
		w.logger.Error().Err(err).Int64("task_id", task.ID).Msg("export worker: deadletter push")
	}
}
