package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/furniture-crm/pkg/money"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNew(t *testing.T) {
	event := New(PaymentRecorded, 7, money.FromMinor(100000), money.FromMinor(80000)).
		WithPayment(3, money.FromMinor(20000))

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, PaymentRecorded, event.Type)
	assert.Equal(t, int64(7), event.OrderID)
	assert.Equal(t, int64(3), event.PaymentID)
	assert.Equal(t, "200.00", event.Amount)
	assert.Equal(t, "1000.00", event.Total)
	assert.Equal(t, "800.00", event.Paid)
	assert.Equal(t, "200.00", event.Remaining)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewKafkaPublisherWithWriter(writer)
	event := New(BalanceReconciled, 42, money.FromMinor(100000), money.FromMinor(70000))

	err := publisher.Publish(context.Background(), event)

	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, []kafka.Header{{Key: "type", Value: []byte("balance.reconciled")}}, msg.Headers)

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "700.00", decoded.Paid)
	assert.Zero(t, decoded.PaymentID)

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker down")}
	publisher := NewKafkaPublisherWithWriter(writer)

	err := publisher.Publish(context.Background(), New(PaymentDeleted, 1, money.FromMinor(0), money.FromMinor(0)))

	assert.ErrorContains(t, err, "broker down")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), Event{}))
}
