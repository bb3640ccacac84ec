package availability

import (
	"errors"
	"mentor-service/internal/pkg/exceptions"
)

var (
	ErrIndexOutOfRange  = errors.New("availability: slot index out of range")
	ErrInvalidTimeRange = errors.New("availability: start time must be before end time")
	ErrInvalidTimeOfDay = errors.New("availability: time must be HH:MM in 24-hour form")
	ErrUnknownSlotField = errors.New("availability: slot field must be startTime or endTime")
	ErrUnknownDay       = errors.New("availability: day must be Monday through Sunday")
	ErrSaveFailed       = errors.New("availability: save failed")
	ErrSaveInProgress   = errors.New("availability: another save is in progress")
)

// toCustomError maps store errors onto the client-facing catalog. Errors
// that are not store errors are returned unchanged.
func toCustomError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrIndexOutOfRange):
		return exceptions.ErrAvailabilityIndexOutOfRange(err)
	case errors.Is(err, ErrInvalidTimeRange):
		return exceptions.ErrAvailabilityInvalidTimeRange(err)
	case errors.Is(err, ErrInvalidTimeOfDay):
		return exceptions.ErrAvailabilityInvalidTimeOfDay(err)
	case errors.Is(err, ErrUnknownSlotField), errors.Is(err, ErrUnknownDay):
		return exceptions.ErrInputValidation(err)
	case errors.Is(err, ErrSaveInProgress):
		return exceptions.ErrAvailabilitySaveInProgress(err)
	case errors.Is(err, ErrSaveFailed):
		return exceptions.ErrAvailabilitySaveFailed(err)
	}
	return err
}
