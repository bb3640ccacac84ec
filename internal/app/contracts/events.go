package contracts

import (
	"context"
	"mentor-service/internal/app/models"
)

type AvailabilityEventPublisher interface {
	PublishAvailabilitySaved(ctx context.Context, event *models.AvailabilitySavedEvent) error
}
