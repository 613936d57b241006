package scheduler

import (
	"context"
	"encoding/json"
	"log/slog"

	"rental-market/internal/pkg/config"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/commands"

	"github.com/hibiken/asynq"
)

const purgeSpec = "@hourly"

// Handlers turns fired tasks into deadline re-evaluations.
type Handlers struct {
	deadlines commands.DeadlineCommands
}

func NewHandlers(deadlines commands.DeadlineCommands) *Handlers {
	return &Handlers{deadlines: deadlines}
}

func (h *Handlers) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeOfferWindow, h.HandleOfferWindow)
	mux.HandleFunc(TypeCancellationWindow, h.HandleCancellationWindow)
	mux.HandleFunc(TypePurgeIdempotency, h.HandlePurgeIdempotency)
	return mux
}

func (h *Handlers) HandleOfferWindow(ctx context.Context, task *asynq.Task) error {
	var p OfferWindowPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return errs.Wrapf(asynq.SkipRetry, "invalid %s payload: %v", TypeOfferWindow, err)
	}
	event, err := h.deadlines.EvaluateOfferWindow(ctx, p.ConversationID, p.AcceptMessageID)
	if err != nil {
		return err
	}
	slog.Info("offer window evaluated",
		"conversation_id", p.ConversationID,
		"stage", p.Stage,
		"event", event)
	return nil
}

func (h *Handlers) HandleCancellationWindow(ctx context.Context, task *asynq.Task) error {
	var p CancellationWindowPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return errs.Wrapf(asynq.SkipRetry, "invalid %s payload: %v", TypeCancellationWindow, err)
	}
	event, err := h.deadlines.EvaluateCancellationWindow(ctx, p.ReservationID)
	if err != nil {
		return err
	}
	slog.Info("cancellation window evaluated", "reservation_id", p.ReservationID, "event", event)
	return nil
}

func (h *Handlers) HandlePurgeIdempotency(ctx context.Context, _ *asynq.Task) error {
	_, err := h.deadlines.PurgeIdempotencyKeys(ctx)
	return err
}

// Worker owns the asynq server processing deadline tasks and the periodic
// scheduler that enqueues maintenance.
type Worker struct {
	server   *asynq.Server
	periodic *asynq.Scheduler
	handlers *Handlers
}

func NewWorker(cfg config.SchedulerConfig, handlers *Handlers) *Worker {
	opt := RedisOpt(cfg)
	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: cfg.Concurrency,
		Queues: map[string]int{
			queueName: 1,
		},
	})
	periodic := asynq.NewScheduler(opt, &asynq.SchedulerOpts{})
	return &Worker{server: server, periodic: periodic, handlers: handlers}
}

func (w *Worker) Start() error {
	if _, err := w.periodic.Register(purgeSpec, NewPurgeIdempotencyTask()); err != nil {
		return errs.Wrap(err, "register idempotency purge")
	}
	if err := w.server.Start(w.handlers.Mux()); err != nil {
		return errs.Wrap(err, "start deadline worker")
	}
	if err := w.periodic.Start(); err != nil {
		w.server.Shutdown()
		return errs.Wrap(err, "start periodic scheduler")
	}
	slog.Info("deadline worker started", "queue", queueName)
	return nil
}

func (w *Worker) Stop() {
	w.periodic.Shutdown()
	w.server.Shutdown()
	slog.Info("deadline worker stopped")
}
