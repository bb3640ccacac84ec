package events

import (
	"context"
	"mentor-service/internal/app/contracts"
	"mentor-service/internal/app/models"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/exceptions"
	"mentor-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publisher is the part of *amqp091.Channel the service uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type availabilityEventService struct {
	Channel publisher
	Queue   string
	Log     *zap.Logger
}

func NewAvailabilityEventService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.AvailabilityEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &availabilityEventService{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (s *availabilityEventService) PublishAvailabilitySaved(ctx context.Context, event *models.AvailabilitySavedEvent) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type": "JSON",
		"event_type":   event.Type,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
		Timestamp:    event.SavedAt,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("availabilityEventService.PublishAvailabilitySaved published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
		zap.String(constvars.LoggingMentorIDKey, event.MentorID),
	)
	return nil
}
