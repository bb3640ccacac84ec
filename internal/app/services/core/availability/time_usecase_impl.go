package availability

import (
	"context"
	"fmt"
	"mentor-service/internal/app/contracts"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/dto/requests"
	"mentor-service/internal/pkg/dto/responses"
	"mentor-service/internal/pkg/exceptions"
	"mentor-service/internal/pkg/utils"
)

type timeUsecase struct{}

func NewTimeUsecase() contracts.TimeUsecase {
	return &timeUsecase{}
}

func (uc *timeUsecase) Encode(ctx context.Context, request *requests.EncodeTime) (*responses.TimeValue, error) {
	parts := utils.TimeParts{Hour: request.Hour, Minute: request.Minute, Period: request.Period}
	return buildTimeValue(parts.Encode(), parts), nil
}

// Decode accepts an empty value, which decodes to the picker default.
func (uc *timeUsecase) Decode(ctx context.Context, value string) (*responses.TimeValue, error) {
	if value != "" && !utils.IsCanonicalTime24(value) {
		return nil, exceptions.ErrAvailabilityInvalidTimeOfDay(fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, value))
	}

	parts := utils.DecodeTime(value)
	if value == "" {
		value = constvars.DefaultSlotStartTime
	}
	return buildTimeValue(value, parts), nil
}

func buildTimeValue(time24 string, parts utils.TimeParts) *responses.TimeValue {
	return &responses.TimeValue{
		Time24: time24,
		Hour:   parts.Hour,
		Minute: parts.Minute,
		Period: parts.Period,
		Label:  parts.String(),
	}
}
