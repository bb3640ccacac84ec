package contracts

import (
	"context"
	"mentor-service/internal/pkg/dto/requests"
	"mentor-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context, mentorID string) (*responses.Availability, error)
	AddWeeklySlot(ctx context.Context, mentorID string, request *requests.AddWeeklySlot) (*responses.Availability, error)
	UpdateWeeklySlot(ctx context.Context, mentorID string, index int, request *requests.UpdateSlot) (*responses.Availability, error)
	RemoveWeeklySlot(ctx context.Context, mentorID string, index int) (*responses.Availability, error)
	GetDateAvailability(ctx context.Context, mentorID, date string) (*responses.DateAvailability, error)
	AddDateOverrideSlot(ctx context.Context, mentorID, date string) (*responses.DateAvailability, error)
	UpdateDateOverrideSlot(ctx context.Context, mentorID, date string, index int, request *requests.UpdateSlot) (*responses.DateAvailability, error)
	RemoveDateOverrideSlot(ctx context.Context, mentorID, date string, index int) (*responses.DateAvailability, error)
	SetDateUnavailable(ctx context.Context, mentorID, date string) (*responses.DateAvailability, error)
	ClearDateOverride(ctx context.Context, mentorID, date string) (*responses.DateAvailability, error)
	SaveAvailability(ctx context.Context, mentorID string) (*responses.SaveAvailability, error)
	DiscardDraft(ctx context.Context, mentorID string) error
}

type TimeUsecase interface {
	Encode(ctx context.Context, request *requests.EncodeTime) (*responses.TimeValue, error)
	Decode(ctx context.Context, value string) (*responses.TimeValue, error)
}
