// Package eventbus publishes booking lifecycle events to RabbitMQ.
package eventbus

import (
	"clinic-booking-service/internal/app/contracts"
	"clinic-booking-service/internal/pkg/constvars"
	"clinic-booking-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const EventAppointmentCreated = "appointment.created"

// Channel is the subset of *amqp091.Channel used for publishing.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type bookingEventPublisher struct {
	Channel Channel
	Queue   string
	Log     *zap.Logger
}

func NewBookingEventPublisher(channel Channel, queue string, logger *zap.Logger) contracts.BookingEventPublisher {
	return &bookingEventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

// NewRabbitMQPublisher opens a channel on conn and declares queue as durable.
func NewRabbitMQPublisher(conn *amqp091.Connection, queue string, logger *zap.Logger) (contracts.BookingEventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		return nil, err
	}
	return NewBookingEventPublisher(channel, queue, logger), nil
}

func (p *bookingEventPublisher) PublishAppointmentCreated(ctx context.Context, event *contracts.AppointmentCreatedEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("bookingEventPublisher.PublishAppointmentCreated called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, p.Queue),
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Type:         EventAppointmentCreated,
		MessageId:    event.AppointmentID,
		Timestamp:    event.OccurredAt,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"event_type":   EventAppointmentCreated,
			"request_id":   requestID,
		},
	}

	if err := p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Info("bookingEventPublisher.PublishAppointmentCreated succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, EventAppointmentCreated),
	)
	return nil
}

type noopPublisher struct {
	Log *zap.Logger
}

// NewNoopPublisher is used when no event queue is configured.
func NewNoopPublisher(logger *zap.Logger) contracts.BookingEventPublisher {
	return &noopPublisher{Log: logger}
}

func (p *noopPublisher) PublishAppointmentCreated(ctx context.Context, event *contracts.AppointmentCreatedEvent) error {
	p.Log.Debug("noopPublisher.PublishAppointmentCreated skipped, no event queue configured",
		zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
	)
	return nil
}
