package controllers

import (
	"context"
	"errors"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/exceptions"
	"mentor-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const usecaseTimeout = 10 * time.Second

// requestIDFromContext writes the error response itself when the request ID
// is missing; callers just return.
func requestIDFromContext(log *zap.Logger, w http.ResponseWriter, r *http.Request, operation string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error(operation + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMentorIDKey, chi.URLParam(r, constvars.URLParamMentorID)),
	)
	return requestID, true
}

func decodeJSON(log *zap.Logger, w http.ResponseWriter, r *http.Request, operation, requestID string, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		log.Error(operation+" error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if tooLarge, ok := bodyTooLarge(err); ok {
			utils.BuildErrorResponse(log, w, tooLarge)
			return false
		}
		utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	return true
}

// bodyTooLarge reports whether err came from reading past the body limit.
func bodyTooLarge(err error) (*exceptions.CustomError, bool) {
	var maxBytesErr *http.MaxBytesError
	if !errors.As(err, &maxBytesErr) {
		return nil, false
	}
	return exceptions.ErrRequestBodyTooLarge(err, int(maxBytesErr.Limit/(1024*1024))), true
}

func validateRequest(log *zap.Logger, w http.ResponseWriter, operation, requestID string, request interface{}) bool {
	if err := utils.ValidateStruct(request); err != nil {
		log.Error(operation+" error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

func indexFromURL(log *zap.Logger, w http.ResponseWriter, r *http.Request, requestID string) (int, bool) {
	index, err := utils.ParseIndexParam(chi.URLParam(r, constvars.URLParamIndex))
	if err != nil {
		log.Error("invalid slot index in url",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamIndex))
		return 0, false
	}
	return index, true
}

// handleUsecaseError keeps the status of errors the usecase already mapped;
// only a bare deadline becomes a gateway timeout.
func handleUsecaseError(log *zap.Logger, w http.ResponseWriter, operation, requestID string, err error) {
	log.Error(operation+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) && errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
