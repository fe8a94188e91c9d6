package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"github.com/segmentio/kafka-go"
)

const eventTypeHeader = "event-type"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaPublisher struct {
	writer messageWriter
}

// NewKafkaWriter builds a writer for topic; the caller closes it.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
	}
}

func NewKafkaPublisher(writer messageWriter) port.EventPublisher {
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return fmt.Errorf("buildMessage: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writer.WriteMessages: %w", err)
	}

	return nil
}

type orderEventPayload struct {
	Type            string     `json:"type"`
	OrderID         uuid.UUID  `json:"orderId"`
	OwnerID         uuid.UUID  `json:"ownerId"`
	Status          string     `json:"status"`
	PreviousStatus  string     `json:"previousStatus,omitempty"`
	DeliveryRouteID *uuid.UUID `json:"deliveryRouteId,omitempty"`
	DeliveryDate    string     `json:"deliveryDate,omitempty"`
	ProductID       *uuid.UUID `json:"productId,omitempty"`
	OccurredAt      time.Time  `json:"occurredAt"`
}

// buildMessage keys by order id so all events of one order land on the same partition.
func buildMessage(event domain.OrderEvent) (kafka.Message, error) {
	payload := orderEventPayload{
		Type:            string(event.Type),
		OrderID:         event.OrderID,
		OwnerID:         event.OwnerID,
		Status:          string(event.Status),
		PreviousStatus:  string(event.PreviousStatus),
		DeliveryRouteID: event.DeliveryRouteID,
		ProductID:       event.ProductID,
		OccurredAt:      event.OccurredAt.UTC(),
	}
	if event.DeliveryDate != nil {
		payload.DeliveryDate = event.DeliveryDate.Format(time.DateOnly)
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(event.Type)},
		},
	}, nil
}

type noopPublisher struct{}

// NewNoopPublisher drops every event. Used when no brokers are configured.
func NewNoopPublisher() port.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, domain.OrderEvent) error {
	return nil
}
