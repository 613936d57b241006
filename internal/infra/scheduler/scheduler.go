package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rental-market/internal/domain/negotiation"
	"rental-market/internal/pkg/config"
	"rental-market/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	StageWarning  = "warning"
	StageDeadline = "deadline"
)

// Enqueuer is the part of *asynq.Client the scheduler needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type AsynqScheduler struct {
	client Enqueuer
}

func NewAsynqScheduler(client Enqueuer) *AsynqScheduler {
	return &AsynqScheduler{client: client}
}

func RedisOpt(cfg config.SchedulerConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

// ScheduleOfferWindow enqueues a warning check and a deadline check for the
// accept's countdown.
func (s *AsynqScheduler) ScheduleOfferWindow(ctx context.Context, conversationID, acceptMessageID uuid.UUID, acceptedAt time.Time) error {
	cd := negotiation.CountdownFrom(acceptedAt)
	stages := []struct {
		stage  string
		fireAt time.Time
	}{
		{StageWarning, cd.WarningAt()},
		{StageDeadline, cd.Deadline},
	}
	for _, st := range stages {
		task, opts, err := NewOfferWindowTask(OfferWindowPayload{
			ConversationID:  conversationID,
			AcceptMessageID: acceptMessageID,
			Stage:           st.stage,
		}, st.fireAt)
		if err != nil {
			return err
		}
		if err := s.enqueue(ctx, task, opts); err != nil {
			return err
		}
	}
	return nil
}

func (s *AsynqScheduler) ScheduleCancellationWindow(ctx context.Context, reservationID uuid.UUID, deadline time.Time) error {
	task, opts, err := NewCancellationWindowTask(CancellationWindowPayload{ReservationID: reservationID}, deadline)
	if err != nil {
		return err
	}
	return s.enqueue(ctx, task, opts)
}

func (s *AsynqScheduler) enqueue(ctx context.Context, task *asynq.Task, opts []asynq.Option) error {
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return err
	}
	slog.Debug("deadline task scheduled", "type", task.Type(), "id", info.ID, "process_at", info.NextProcessAt)
	return nil
}

// NopScheduler is used when no Redis is configured. Windows are still
// enforced at action time; only the proactive announcements are lost.
type NopScheduler struct{}

func (NopScheduler) ScheduleOfferWindow(context.Context, uuid.UUID, uuid.UUID, time.Time) error {
	return nil
}

func (NopScheduler) ScheduleCancellationWindow(context.Context, uuid.UUID, time.Time) error {
	return nil
}

var (
	_ shared.DeadlineScheduler = (*AsynqScheduler)(nil)
	_ shared.DeadlineScheduler = NopScheduler{}
)
