package producer

import (
	"context"

	"github.com/clovisdasilvaneto/clockin/internal/events"
	"github.com/clovisdasilvaneto/clockin/internal/messaging/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// publishEvent writes one outbox row to the punch topic, keyed by clockin
// id so all events of a punch land on the same partition.
func publishEvent(ctx context.Context, writer *kafkago.Writer, event kafka.OutboxEvent) error {
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}

	msg := kafkago.Message{
		Topic: events.ClockinPunchTopic,
		Key:   []byte(event.ClockinID),
		Value: event.Payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "request_id", Value: []byte(event.RequestID)},
		},
	}

	return writer.WriteMessages(ctx, msg)
}
