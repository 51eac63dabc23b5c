package eventqueue

import (
	"context"
	"fmt"
	"mado-service/internal/app/contracts"
	"mado-service/internal/pkg/constvars"
	"mado-service/internal/pkg/dto/requests"
	"mado-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publishConfirmation resolves to the broker's ack for one published message.
type publishConfirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// publisherChannel is the subset of *amqp.Channel used for publishing.
type publisherChannel interface {
	PublishWithDeferredConfirm(ctx context.Context, exchange, key string, msg amqp.Publishing) (publishConfirmation, error)
}

// confirmingChannel adapts a channel in confirm mode. Each publish gets its own
// deferred confirmation, so a confirm abandoned on ctx expiry is never read by a
// later publish.
type confirmingChannel struct {
	ch *amqp.Channel
}

func (c *confirmingChannel) PublishWithDeferredConfirm(ctx context.Context, exchange, key string, msg amqp.Publishing) (publishConfirmation, error) {
	confirmation, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if confirmation == nil {
		return nil, fmt.Errorf("channel is not in confirm mode")
	}
	return confirmation, nil
}

// Service publishes MADO draft lifecycle events to a durable RabbitMQ queue.
type Service struct {
	ch        publisherChannel
	log       *zap.Logger
	queueName string
}

// NewService declares the durable events queue and enables publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (contracts.MadoEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        &confirmingChannel{ch: ch},
		log:       log,
		queueName: queueName,
	}, nil
}

// Publish sends the event as a persistent message and waits for the broker confirm.
func (s *Service) Publish(ctx context.Context, event *requests.MadoEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("MadoEventQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.EventType),
		zap.String(constvars.LoggingDraftIDKey, event.DraftID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.EventType,
	}

	confirmation, err := s.ch.PublishWithDeferredConfirm(ctx, "", s.queueName, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queueName)
	}

	s.log.Info("MadoEventQueue.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)
	return nil
}
