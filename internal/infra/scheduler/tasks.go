package scheduler

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeOfferWindow        = "offer:window"
	TypeCancellationWindow = "reservation:cancellation_window"
	TypePurgeIdempotency   = "maintenance:purge_idempotency"
)

const queueName = "deadlines"

type OfferWindowPayload struct {
	ConversationID  uuid.UUID `json:"conversation_id"`
	AcceptMessageID uuid.UUID `json:"accept_message_id"`
	Stage           string    `json:"stage"`
}

type CancellationWindowPayload struct {
	ReservationID uuid.UUID `json:"reservation_id"`
}

// NewOfferWindowTask fires at fireAt. The task id makes re-scheduling the
// same accept and stage a no-op.
func NewOfferWindowTask(p OfferWindowPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.Queue(queueName),
		asynq.TaskID(fmt.Sprintf("%s:%s:%s", TypeOfferWindow, p.AcceptMessageID, p.Stage)),
		asynq.MaxRetry(5),
	}
	return asynq.NewTask(TypeOfferWindow, body), opts, nil
}

func NewCancellationWindowTask(p CancellationWindowPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.Queue(queueName),
		asynq.TaskID(fmt.Sprintf("%s:%s", TypeCancellationWindow, p.ReservationID)),
		asynq.MaxRetry(5),
	}
	return asynq.NewTask(TypeCancellationWindow, body), opts, nil
}

func NewPurgeIdempotencyTask() *asynq.Task {
	return asynq.NewTask(TypePurgeIdempotency, nil, asynq.Queue(queueName))
}
