package controllers

import (
	"context"
	"mentor-service/internal/app/config"
	"mentor-service/internal/app/contracts"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/dto/requests"
	"mentor-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase contracts.AvailabilityUsecase
	InternalConfig      *config.InternalConfig
}

var (
	availabilityControllerInstance *AvailabilityController
	onceAvailabilityController     sync.Once
)

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase contracts.AvailabilityUsecase, internalConfig *config.InternalConfig) *AvailabilityController {
	onceAvailabilityController.Do(func() {
		availabilityControllerInstance = &AvailabilityController{
			Log:                 logger,
			AvailabilityUsecase: availabilityUsecase,
			InternalConfig:      internalConfig,
		}
	})
	return availabilityControllerInstance
}

func (ctrl *AvailabilityController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.GetAvailability"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.GetAvailability(ctx, chi.URLParam(r, constvars.URLParamMentorID))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, result)
}

func (ctrl *AvailabilityController) AddWeeklySlot(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.AddWeeklySlot"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.AddWeeklySlot)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.AddWeeklySlot(ctx, chi.URLParam(r, constvars.URLParamMentorID), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	ctrl.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddWeeklySlotSuccessMessage, result)
}

func (ctrl *AvailabilityController) UpdateWeeklySlot(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.UpdateWeeklySlot"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	index, ok := indexFromURL(ctrl.Log, w, r, requestID)
	if !ok {
		return
	}

	request := new(requests.UpdateSlot)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	utils.SanitizeUpdateSlotRequest(request)
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.UpdateWeeklySlot(ctx, chi.URLParam(r, constvars.URLParamMentorID), index, request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	ctrl.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotIndexKey, index),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateWeeklySlotSuccessMessage, result)
}

func (ctrl *AvailabilityController) RemoveWeeklySlot(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.RemoveWeeklySlot"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	index, ok := indexFromURL(ctrl.Log, w, r, requestID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.RemoveWeeklySlot(ctx, chi.URLParam(r, constvars.URLParamMentorID), index)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveWeeklySlotSuccessMessage, result)
}

func (ctrl *AvailabilityController) GetDateAvailability(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.GetDateAvailability"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.GetDateAvailability(ctx, chi.URLParam(r, constvars.URLParamMentorID), chi.URLParam(r, constvars.URLParamDate))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDateAvailabilitySuccessMessage, result)
}

func (ctrl *AvailabilityController) AddDateOverrideSlot(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.AddDateOverrideSlot"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.AddDateOverrideSlot(ctx, chi.URLParam(r, constvars.URLParamMentorID), chi.URLParam(r, constvars.URLParamDate))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	ctrl.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, result.Date),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddDateSlotSuccessMessage, result)
}

func (ctrl *AvailabilityController) UpdateDateOverrideSlot(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.UpdateDateOverrideSlot"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	index, ok := indexFromURL(ctrl.Log, w, r, requestID)
	if !ok {
		return
	}

	request := new(requests.UpdateSlot)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	utils.SanitizeUpdateSlotRequest(request)
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.UpdateDateOverrideSlot(ctx, chi.URLParam(r, constvars.URLParamMentorID), chi.URLParam(r, constvars.URLParamDate), index, request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDateSlotSuccessMessage, result)
}

func (ctrl *AvailabilityController) RemoveDateOverrideSlot(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.RemoveDateOverrideSlot"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	index, ok := indexFromURL(ctrl.Log, w, r, requestID)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.RemoveDateOverrideSlot(ctx, chi.URLParam(r, constvars.URLParamMentorID), chi.URLParam(r, constvars.URLParamDate), index)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveDateSlotSuccessMessage, result)
}

func (ctrl *AvailabilityController) SetDateUnavailable(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.SetDateUnavailable"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.SetDateUnavailable(ctx, chi.URLParam(r, constvars.URLParamMentorID), chi.URLParam(r, constvars.URLParamDate))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetDateUnavailableSuccessMessage, result)
}

func (ctrl *AvailabilityController) ClearDateOverride(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.ClearDateOverride"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.ClearDateOverride(ctx, chi.URLParam(r, constvars.URLParamMentorID), chi.URLParam(r, constvars.URLParamDate))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ClearDateOverrideSuccessMessage, result)
}

// SaveAvailability blocks until the save finishes, so the response already
// carries the outcome.
func (ctrl *AvailabilityController) SaveAvailability(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.SaveAvailability"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.SaveAvailability(ctx, chi.URLParam(r, constvars.URLParamMentorID))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	ctrl.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingWeeklySlotsKey, result.WeeklySlotCount),
		zap.Int(constvars.LoggingOverridesKey, result.OverrideCount),
	)
	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.SaveAvailabilitySuccessMessage, result)
}

func (ctrl *AvailabilityController) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	const operation = "AvailabilityController.DiscardDraft"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	err := ctrl.AvailabilityUsecase.DiscardDraft(r.Context(), chi.URLParam(r, constvars.URLParamMentorID))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DiscardAvailabilityDraftSuccessMessage, nil)
}
