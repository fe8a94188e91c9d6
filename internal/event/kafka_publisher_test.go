package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/samber/lo"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestBuildMessage(t *testing.T) {
	routeID := uuid.New()
	event := domain.OrderEvent{
		Type:            domain.OrderEventRouteAssigned,
		OrderID:         uuid.New(),
		OwnerID:         uuid.New(),
		Status:          domain.OrderStatusProcessing,
		DeliveryRouteID: &routeID,
		DeliveryDate:    lo.ToPtr(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)),
		OccurredAt:      time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	msg, err := buildMessage(event)
	require.NoError(t, err)

	assert.Equal(t, event.OrderID.String(), string(msg.Key))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "route_assigned", string(msg.Headers[0].Value))

	var payload map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &payload))

	assert.Equal(t, "route_assigned", payload["type"])
	assert.Equal(t, "processing", payload["status"])
	assert.Equal(t, "2025-03-14", payload["deliveryDate"])
	assert.Equal(t, routeID.String(), payload["deliveryRouteId"])
	assert.NotContains(t, payload, "previousStatus")
	assert.NotContains(t, payload, "productId")
}

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := &recordingWriter{}
	publisher := NewKafkaPublisher(writer)

	event := domain.NewOrderEvent(domain.OrderEventCreated, domain.Order{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Status:  domain.OrderStatusPending,
	}, time.Now())

	require.NoError(t, publisher.Publish(t.Context(), event))
	require.Len(t, writer.messages, 1)

	writer.err = errors.New("broker down")
	err := publisher.Publish(t.Context(), event)
	require.EqualError(t, err, "writer.WriteMessages: broker down")
}
