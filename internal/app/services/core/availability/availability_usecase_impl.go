package availability

import (
	"context"
	"fmt"
	"mentor-service/internal/app/config"
	"mentor-service/internal/app/contracts"
	"mentor-service/internal/app/models"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/dto/requests"
	"mentor-service/internal/pkg/dto/responses"
	"mentor-service/internal/pkg/exceptions"
	"mentor-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

type availabilityUsecase struct {
	Sessions         *Sessions
	MentorRepository contracts.MentorRepository
	LockerService    contracts.LockerService
	EventPublisher   contracts.AvailabilityEventPublisher
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewAvailabilityUsecase(
	sessions *Sessions,
	mentorRepository contracts.MentorRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.AvailabilityEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = newAvailabilityUsecase(sessions, mentorRepository, lockerService, eventPublisher, internalConfig, logger)
	})
	return availabilityUsecaseInstance
}

func newAvailabilityUsecase(
	sessions *Sessions,
	mentorRepository contracts.MentorRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.AvailabilityEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *availabilityUsecase {
	return &availabilityUsecase{
		Sessions:         sessions,
		MentorRepository: mentorRepository,
		LockerService:    lockerService,
		EventPublisher:   eventPublisher,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *availabilityUsecase) GetAvailability(ctx context.Context, mentorID string) (*responses.Availability, error) {
	var response *responses.Availability
	err := uc.edit(ctx, "GetAvailability", mentorID, func(store *Store) error {
		response = buildAvailabilityResponse(store)
		return nil
	})
	return response, err
}

func (uc *availabilityUsecase) AddWeeklySlot(ctx context.Context, mentorID string, request *requests.AddWeeklySlot) (*responses.Availability, error) {
	var response *responses.Availability
	err := uc.edit(ctx, "AddWeeklySlot", mentorID, func(store *Store) error {
		if _, err := store.AddWeeklySlot(request.Day); err != nil {
			return err
		}
		response = buildAvailabilityResponse(store)
		return nil
	})
	return response, err
}

func (uc *availabilityUsecase) UpdateWeeklySlot(ctx context.Context, mentorID string, index int, request *requests.UpdateSlot) (*responses.Availability, error) {
	var response *responses.Availability
	err := uc.edit(ctx, "UpdateWeeklySlot", mentorID, func(store *Store) error {
		if err := store.UpdateWeeklySlot(index, request.Field, request.Value); err != nil {
			return err
		}
		response = buildAvailabilityResponse(store)
		return nil
	})
	return response, err
}

func (uc *availabilityUsecase) RemoveWeeklySlot(ctx context.Context, mentorID string, index int) (*responses.Availability, error) {
	var response *responses.Availability
	err := uc.edit(ctx, "RemoveWeeklySlot", mentorID, func(store *Store) error {
		if err := store.RemoveWeeklySlot(index); err != nil {
			return err
		}
		response = buildAvailabilityResponse(store)
		return nil
	})
	return response, err
}

func (uc *availabilityUsecase) GetDateAvailability(ctx context.Context, mentorID, dateKey string) (*responses.DateAvailability, error) {
	return uc.editDate(ctx, "GetDateAvailability", mentorID, dateKey, func(store *Store, date time.Time) error {
		return nil
	})
}

func (uc *availabilityUsecase) AddDateOverrideSlot(ctx context.Context, mentorID, dateKey string) (*responses.DateAvailability, error) {
	return uc.editDate(ctx, "AddDateOverrideSlot", mentorID, dateKey, func(store *Store, date time.Time) error {
		store.AddDateOverrideSlot(date)
		return nil
	})
}

func (uc *availabilityUsecase) UpdateDateOverrideSlot(ctx context.Context, mentorID, dateKey string, index int, request *requests.UpdateSlot) (*responses.DateAvailability, error) {
	return uc.editDate(ctx, "UpdateDateOverrideSlot", mentorID, dateKey, func(store *Store, date time.Time) error {
		return store.UpdateDateOverrideSlot(date, index, request.Field, request.Value)
	})
}

func (uc *availabilityUsecase) RemoveDateOverrideSlot(ctx context.Context, mentorID, dateKey string, index int) (*responses.DateAvailability, error) {
	return uc.editDate(ctx, "RemoveDateOverrideSlot", mentorID, dateKey, func(store *Store, date time.Time) error {
		return store.RemoveDateOverrideSlot(date, index)
	})
}

func (uc *availabilityUsecase) SetDateUnavailable(ctx context.Context, mentorID, dateKey string) (*responses.DateAvailability, error) {
	return uc.editDate(ctx, "SetDateUnavailable", mentorID, dateKey, func(store *Store, date time.Time) error {
		store.SetExplicitUnavailable(date)
		return nil
	})
}

func (uc *availabilityUsecase) ClearDateOverride(ctx context.Context, mentorID, dateKey string) (*responses.DateAvailability, error) {
	return uc.editDate(ctx, "ClearDateOverride", mentorID, dateKey, func(store *Store, date time.Time) error {
		store.ClearOverride(date)
		return nil
	})
}

// SaveAvailability persists the editor's current state and waits for the
// outcome. The editor session is kept so editing can continue after saving.
func (uc *availabilityUsecase) SaveAvailability(ctx context.Context, mentorID string) (*responses.SaveAvailability, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.SaveAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMentorIDKey, mentorID),
	)

	var (
		result   <-chan error
		response = &responses.SaveAvailability{MentorID: mentorID}
	)
	err := uc.Sessions.WithStore(ctx, mentorID, func(store *Store) error {
		result = store.SaveAsync(ctx, func(ctx context.Context, snapshot *models.AvailabilitySnapshot) error {
			return uc.persist(ctx, mentorID, snapshot, response)
		})
		return nil
	})
	if err != nil {
		return nil, toCustomError(err)
	}

	if err := <-result; err != nil {
		uc.Log.Error("availabilityUsecase.SaveAvailability failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMentorIDKey, mentorID),
			zap.Error(err),
		)
		return nil, toCustomError(err)
	}

	uc.Log.Info("availabilityUsecase.SaveAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMentorIDKey, mentorID),
		zap.Int(constvars.LoggingWeeklySlotsKey, response.WeeklySlotCount),
		zap.Int(constvars.LoggingOverridesKey, response.OverrideCount),
	)
	return response, nil
}

func (uc *availabilityUsecase) DiscardDraft(ctx context.Context, mentorID string) error {
	discarded := uc.Sessions.Discard(mentorID)
	uc.Log.Info("availabilityUsecase.DiscardDraft called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingMentorIDKey, mentorID),
		zap.Bool(constvars.LoggingEvictedKey, discarded),
	)
	return nil
}

// persist runs on the save goroutine. It holds the per-mentor save lock for
// the duration of the write and announces the save once it is stored.
func (uc *availabilityUsecase) persist(ctx context.Context, mentorID string, snapshot *models.AvailabilitySnapshot, response *responses.SaveAvailability) error {
	ttl := time.Duration(uc.InternalConfig.Availability.SaveLockTTLInSeconds) * time.Second
	timeout := max(time.Duration(uc.InternalConfig.Availability.SaveTimeoutInSeconds)*time.Second, ttl)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	lockKey := constvars.AvailabilitySaveLockKeyPrefix + mentorID
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, ttl)
	if err != nil {
		return err
	}
	if !acquired {
		return fmt.Errorf("%w: %s", ErrSaveInProgress, lockKey)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("availabilityUsecase.persist failed to release save lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()
	stopRefresh := uc.keepLockAlive(ctx, lockKey, lockValue, ttl)
	defer stopRefresh()

	err = uc.MentorRepository.SaveAvailability(ctx, mentorID, snapshot)
	if err != nil {
		return err
	}

	response.SavedAt = time.Now()
	response.WeeklySlotCount = len(snapshot.WeeklySlots)
	response.OverrideCount = len(snapshot.DateOverrides)

	event := &models.AvailabilitySavedEvent{
		Type:            constvars.AvailabilitySavedEventType,
		MentorID:        mentorID,
		SavedAt:         response.SavedAt,
		WeeklySlotCount: response.WeeklySlotCount,
		OverrideCount:   response.OverrideCount,
	}
	if err := uc.EventPublisher.PublishAvailabilitySaved(ctx, event); err != nil {
		uc.Log.Warn("availabilityUsecase.persist failed to publish saved event",
			zap.String(constvars.LoggingMentorIDKey, mentorID),
			zap.Error(err),
		)
	}
	return nil
}

// keepLockAlive refreshes the save lock every half TTL until the returned
// stop func is called or the lock is lost.
func (uc *availabilityUsecase) keepLockAlive(ctx context.Context, lockKey, lockValue string, ttl time.Duration) (stop func()) {
	interval := ttl / 2
	if interval <= 0 {
		return func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := uc.LockerService.Refresh(ctx, lockKey, lockValue, ttl); err != nil {
					uc.Log.Warn("availabilityUsecase.keepLockAlive failed to refresh save lock",
						zap.String(constvars.LoggingRedisKey, lockKey),
						zap.Error(err),
					)
					return
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

func (uc *availabilityUsecase) edit(ctx context.Context, operation, mentorID string, fn func(store *Store) error) error {
	err := utils.LogOperation(uc.Log, "availabilityUsecase."+operation, utils.GetRequestID(ctx), func() error {
		return uc.Sessions.WithStore(ctx, mentorID, fn)
	})
	return toCustomError(err)
}

func (uc *availabilityUsecase) editDate(ctx context.Context, operation, mentorID, dateKey string, fn func(store *Store, date time.Time) error) (*responses.DateAvailability, error) {
	date, err := utils.ParseDateKey(dateKey)
	if err != nil {
		return nil, exceptions.ErrAvailabilityInvalidDate(err)
	}

	var response *responses.DateAvailability
	err = uc.edit(ctx, operation, mentorID, func(store *Store) error {
		if err := fn(store, date); err != nil {
			return err
		}
		response = buildDateAvailabilityResponse(store, date)
		return nil
	})
	return response, err
}

func buildAvailabilityResponse(store *Store) *responses.Availability {
	snapshot := store.Snapshot()
	days := make([]responses.WeeklyDay, 0, len(constvars.DaysOfWeek))
	for _, day := range constvars.DaysOfWeek {
		days = append(days, responses.WeeklyDay{
			Day:   day,
			Slots: store.WeeklySlotsForDay(day),
		})
	}

	return &responses.Availability{
		WeeklySlots:   snapshot.WeeklySlots,
		DateOverrides: snapshot.DateOverrides,
		OverrideDates: store.OverrideDates(),
		Days:          days,
	}
}

func buildDateAvailabilityResponse(store *Store, date time.Time) *responses.DateAvailability {
	return &responses.DateAvailability{
		Date:    utils.FormatDateKey(date),
		Weekday: utils.WeekdayName(date),
		Kind:    store.OverrideFor(date),
		Slots:   store.ResolveForDate(date),
	}
}
