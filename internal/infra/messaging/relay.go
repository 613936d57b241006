package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"rental-market/internal/infra/pgq"
	"rental-market/internal/infra/readstore"
	"rental-market/internal/infra/repository"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/config"
	"rental-market/internal/pkg/errs"
	"rental-market/internal/usecase/queries"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	eventSource = "rental-market"
	specVersion = "1.0"
	maxAttempts = 8
)

var errRelayNotConfigured = errs.New("relay requires a database and a publisher")

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Relay drains notification_jobs into Kafka. Each batch is claimed with
// SKIP LOCKED, so several relays can run side by side.
type Relay struct {
	db          TxBeginner
	queries     *pgq.Queries
	publisher   Publisher
	clock       clock.Clock
	interval    time.Duration
	batch       int32
	topicPrefix string
}

func NewRelay(db TxBeginner, q *pgq.Queries, publisher Publisher, clk clock.Clock, cfg config.KafkaConfig) *Relay {
	batch := cfg.RelayBatch
	if batch <= 0 {
		batch = 50
	}
	interval := cfg.RelayInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	return &Relay{
		db:          db,
		queries:     q,
		publisher:   publisher,
		clock:       clk,
		interval:    interval,
		batch:       int32(batch), // #nosec G115 -- small config value
		topicPrefix: cfg.TopicPrefix,
	}
}

func (r *Relay) Run(ctx context.Context) error {
	if r.db == nil || r.publisher == nil {
		return errRelayNotConfigured
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("notification relay batch failed", slog.String("error", err.Error()))
			}
		}
	}
}

// RunOnce publishes one batch of due jobs and returns how many were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "begin relay transaction")
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("relay rollback failed", slog.String("error", rbErr.Error()))
		}
	}()

	now := r.clock.Now()
	jobs, err := readstore.NewNotificationReadStore(r.queries, tx).ClaimDue(ctx, now, r.batch)
	if err != nil {
		return 0, err
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	repo := repository.NewNotificationRepository(r.queries, tx)
	sent := 0
	for _, job := range jobs {
		status, lastErr, retryAt := r.deliver(ctx, job, now)
		if err := repo.UpdateJobStatus(ctx, job.ID, status, lastErr, retryAt); err != nil {
			return sent, err
		}
		if status == repository.JobStatusSent {
			sent++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errs.Wrap(err, "commit relay transaction")
	}
	return sent, nil
}

func (r *Relay) deliver(ctx context.Context, job *queries.NotificationJobView, now time.Time) (string, *string, *time.Time) {
	payload, key, err := cloudEvent(job)
	if err == nil {
		err = r.publisher.Publish(ctx, r.TopicFor(job.Topic), key, payload, map[string]string{
			"content-type": "application/cloudevents+json",
			"ce_type":      job.Kind,
		})
	}
	if err == nil {
		return repository.JobStatusSent, nil, nil
	}

	msg := err.Error()
	attempts := int(job.Attempts) + 1
	slog.Warn("notification delivery failed",
		slog.String("job_id", job.ID.String()),
		slog.String("kind", job.Kind),
		slog.Int("attempt", attempts),
		slog.String("error", msg))
	if attempts >= maxAttempts {
		return repository.JobStatusFailed, &msg, nil
	}
	retryAt := now.Add(retryDelay(attempts))
	return repository.JobStatusQueued, &msg, &retryAt
}

// TopicFor maps an outbox topic to "<prefix><topic>.events.v1".
func (r *Relay) TopicFor(topic string) string {
	return r.topicPrefix + topic + ".events.v1"
}

// retryDelay doubles from 2s per attempt up to ten minutes, without jitter.
func retryDelay(attempt int) time.Duration {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     2 * time.Second,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         10 * time.Minute,
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	var d time.Duration
	for range max(attempt, 1) {
		d = b.NextBackOff()
	}
	return d
}

type envelope struct {
	SpecVersion     string          `json:"specversion"`
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Source          string          `json:"source"`
	Subject         string          `json:"subject,omitempty"`
	Time            time.Time       `json:"time"`
	DataContentType string          `json:"datacontenttype"`
	Data            json.RawMessage `json:"data"`
}

// cloudEvent wraps the stored payload. The job id doubles as the event id so
// consumers can drop redeliveries.
func cloudEvent(job *queries.NotificationJobView) ([]byte, string, error) {
	var data map[string]any
	if err := json.Unmarshal(job.Payload, &data); err != nil {
		return nil, "", errs.Wrap(err, "decode notification payload")
	}
	key := partitionKey(data)
	body, err := json.Marshal(envelope{
		SpecVersion:     specVersion,
		ID:              job.ID.String(),
		Type:            job.Kind + ".v1",
		Source:          eventSource,
		Subject:         key,
		Time:            job.CreatedAt,
		DataContentType: "application/json",
		Data:            job.Payload,
	})
	if err != nil {
		return nil, "", errs.Wrap(err, "encode cloud event")
	}
	return body, key, nil
}

// partitionKey keeps events of one conversation or reservation in order.
func partitionKey(data map[string]any) string {
	for _, field := range []string{"conversation_id", "reservation_id", "transaction_id"} {
		if v, ok := data[field].(string); ok {
			if _, err := uuid.Parse(v); err == nil {
				return v
			}
		}
	}
	return ""
}
