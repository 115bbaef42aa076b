// AngelaMos | 2026
// publisher_test.go

package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efarmlink/efarmlink-api/internal/config"
)

type failingPublisher struct {
	calls int
}

func (f *failingPublisher) Publish(context.Context, Event) error {
	f.calls++
	return errors.New("broker down")
}

func (f *failingPublisher) Close() error { return nil }

func TestNewPublisherDisabledIsNop(t *testing.T) {
	p := NewPublisher(config.KafkaConfig{Enabled: false})

	_, ok := p.(NopPublisher)
	assert.True(t, ok)
	require.NoError(t, p.Publish(context.Background(), New(OrderCreated, "o1", "u1", nil)))
	require.NoError(t, p.Close())
}

func TestNewPublisherEnabledIsKafka(t *testing.T) {
	p := NewPublisher(config.KafkaConfig{
		Enabled: true,
		Brokers: []string{"localhost:9092"},
		Topic:   "test",
	})

	kp, ok := p.(*KafkaPublisher)
	require.True(t, ok)
	assert.Equal(t, "test", kp.writer.Topic)
	assert.Equal(t, 1, kp.writer.BatchSize)
	assert.Equal(t, defaultBatchTimeout, kp.writer.BatchTimeout)
	require.NoError(t, kp.Close())
}

func TestNewKafkaPublisherUsesConfiguredBatchTimeout(t *testing.T) {
	kp := NewKafkaPublisher(config.KafkaConfig{
		Brokers:      []string{"localhost:9092"},
		Topic:        "test",
		BatchTimeout: 50 * time.Millisecond,
	})

	assert.Equal(t, 1, kp.writer.BatchSize)
	assert.Equal(t, 50*time.Millisecond, kp.writer.BatchTimeout)
	require.NoError(t, kp.Close())
}

func TestEmitSwallowsErrors(t *testing.T) {
	fp := &failingPublisher{}

	assert.NotPanics(t, func() {
		Emit(context.Background(), fp, New(MessageSent, "m1", "u1", map[string]string{"a": "b"}))
	})
	assert.Equal(t, 1, fp.calls)

	assert.NotPanics(t, func() {
		Emit(context.Background(), nil, New(MessageSent, "m1", "u1", nil))
	})
}

func TestNewStampsEnvelope(t *testing.T) {
	ev := New(OrderStatusChanged, "order-1", "farmer-1", nil)

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, OrderStatusChanged, ev.Type)
	assert.Equal(t, "order-1", ev.Key)
	assert.Equal(t, "farmer-1", ev.ActorID)
	assert.False(t, ev.OccurredAt.IsZero())
}
