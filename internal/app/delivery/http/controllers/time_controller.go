package controllers

import (
	"context"
	"mentor-service/internal/app/contracts"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/dto/requests"
	"mentor-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type TimeController struct {
	Log         *zap.Logger
	TimeUsecase contracts.TimeUsecase
}

var (
	timeControllerInstance *TimeController
	onceTimeController     sync.Once
)

func NewTimeController(logger *zap.Logger, timeUsecase contracts.TimeUsecase) *TimeController {
	onceTimeController.Do(func() {
		timeControllerInstance = &TimeController{
			Log:         logger,
			TimeUsecase: timeUsecase,
		}
	})
	return timeControllerInstance
}

// Encode converts a picker selection into an HH:MM value.
func (ctrl *TimeController) Encode(w http.ResponseWriter, r *http.Request) {
	const operation = "TimeController.Encode"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.EncodeTime)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	request.Period = strings.TrimSpace(request.Period)
	request.Minute = strings.TrimSpace(request.Minute)
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.TimeUsecase.Encode(ctx, request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EncodeTimeSuccessMessage, result)
}

// Decode splits an HH:MM value into picker parts. An empty value decodes
// to the picker's default selection.
func (ctrl *TimeController) Decode(w http.ResponseWriter, r *http.Request) {
	const operation = "TimeController.Decode"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.TimeUsecase.Decode(ctx, r.URL.Query().Get(constvars.URLQueryParamValue))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	ctrl.Log.Debug(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseKey, result.Time24),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DecodeTimeSuccessMessage, result)
}
