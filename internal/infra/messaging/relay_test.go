//go:build unit

package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"rental-market/internal/infra/repository"
	"rental-market/internal/pkg/clock"
	"rental-market/internal/pkg/config"
	"rental-market/internal/usecase/queries"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	err    error
	topics []string
	keys   []string
	bodies [][]byte
}

func (p *recordingPublisher) Publish(_ context.Context, topic, key string, payload []byte, _ map[string]string) error {
	p.topics = append(p.topics, topic)
	p.keys = append(p.keys, key)
	p.bodies = append(p.bodies, payload)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func newTestRelay(pub Publisher) *Relay {
	clk := clock.NewMockClock(time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC))
	return NewRelay(nil, nil, pub, clk, config.KafkaConfig{TopicPrefix: "test."})
}

func messageJob(t *testing.T, attempts int32) *queries.NotificationJobView {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"message_id":      uuid.NewString(),
		"conversation_id": "6f1c2a57-3c4e-4b57-9b1e-0a8f4c2d9e11",
		"type":            "offer",
	})
	require.NoError(t, err)
	return &queries.NotificationJobView{
		ID:        uuid.New(),
		Kind:      "message.created",
		Topic:     "messages",
		Payload:   payload,
		Attempts:  attempts,
		CreatedAt: time.Date(2026, 4, 1, 7, 59, 0, 0, time.UTC),
	}
}

func TestDeliverWrapsPayloadInCloudEvent(t *testing.T) {
	pub := &recordingPublisher{}
	relay := newTestRelay(pub)
	job := messageJob(t, 0)

	status, lastErr, retryAt := relay.deliver(context.Background(), job, relay.clock.Now())

	assert.Equal(t, repository.JobStatusSent, status)
	assert.Nil(t, lastErr)
	assert.Nil(t, retryAt)
	require.Len(t, pub.topics, 1)
	assert.Equal(t, "test.messages.events.v1", pub.topics[0])
	assert.Equal(t, "6f1c2a57-3c4e-4b57-9b1e-0a8f4c2d9e11", pub.keys[0])

	var evt envelope
	require.NoError(t, json.Unmarshal(pub.bodies[0], &evt))
	assert.Equal(t, "1.0", evt.SpecVersion)
	assert.Equal(t, job.ID.String(), evt.ID)
	assert.Equal(t, "message.created.v1", evt.Type)
	assert.JSONEq(t, string(job.Payload), string(evt.Data))
}

func TestDeliverFailureRequeuesWithBackoff(t *testing.T) {
	pub := &recordingPublisher{err: assert.AnError}
	relay := newTestRelay(pub)
	now := relay.clock.Now()

	status, lastErr, retryAt := relay.deliver(context.Background(), messageJob(t, 2), now)

	assert.Equal(t, repository.JobStatusQueued, status)
	require.NotNil(t, lastErr)
	require.NotNil(t, retryAt)
	assert.Equal(t, now.Add(8*time.Second), *retryAt)
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: 2 * time.Second},
		{attempt: 1, want: 2 * time.Second},
		{attempt: 2, want: 4 * time.Second},
		{attempt: 3, want: 8 * time.Second},
		{attempt: maxAttempts, want: 256 * time.Second},
		{attempt: 30, want: 10 * time.Minute},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, retryDelay(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestDeliverGivesUpAfterMaxAttempts(t *testing.T) {
	relay := newTestRelay(&recordingPublisher{err: assert.AnError})

	status, lastErr, retryAt := relay.deliver(context.Background(), messageJob(t, maxAttempts-1), relay.clock.Now())

	assert.Equal(t, repository.JobStatusFailed, status)
	assert.NotNil(t, lastErr)
	assert.Nil(t, retryAt)
}

func TestDeliverUndecodablePayloadIsNotPublished(t *testing.T) {
	pub := &recordingPublisher{}
	job := messageJob(t, 0)
	job.Payload = []byte("not json")

	status, _, _ := newTestRelay(pub).deliver(context.Background(), job, time.Now())

	assert.Equal(t, repository.JobStatusQueued, status)
	assert.Empty(t, pub.topics)
}

func TestPartitionKeyPrefersConversation(t *testing.T) {
	conv, res := uuid.NewString(), uuid.NewString()

	assert.Equal(t, conv, partitionKey(map[string]any{"conversation_id": conv, "reservation_id": res}))
	assert.Equal(t, res, partitionKey(map[string]any{"reservation_id": res, "transaction_id": uuid.NewString()}))
	assert.Equal(t, "", partitionKey(map[string]any{"conversation_id": "nope"}))
}

func TestKafkaProducerSendsHeaders(t *testing.T) {
	cfg := mocks.NewTestConfig()
	cfg.Producer.Return.Successes = true
	sp := mocks.NewSyncProducer(t, cfg)
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "test.reservations.events.v1", msg.Topic)
		require.Len(t, msg.Headers, 1)
		assert.Equal(t, "content-type", string(msg.Headers[0].Key))
		return nil
	})

	producer := NewKafkaProducerFrom(sp)
	err := producer.Publish(context.Background(), "test.reservations.events.v1", "k", []byte(`{}`), map[string]string{
		"content-type": "application/cloudevents+json",
	})

	require.NoError(t, err)
	require.NoError(t, producer.Close())
}
