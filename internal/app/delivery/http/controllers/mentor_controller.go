package controllers

import (
	"context"
	"mentor-service/internal/app/config"
	"mentor-service/internal/app/contracts"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/dto/requests"
	"mentor-service/internal/pkg/exceptions"
	"mentor-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MentorController struct {
	Log            *zap.Logger
	MentorUsecase  contracts.MentorUsecase
	InternalConfig *config.InternalConfig
}

var (
	mentorControllerInstance *MentorController
	onceMentorController     sync.Once
)

func NewMentorController(logger *zap.Logger, mentorUsecase contracts.MentorUsecase, internalConfig *config.InternalConfig) *MentorController {
	onceMentorController.Do(func() {
		mentorControllerInstance = &MentorController{
			Log:            logger,
			MentorUsecase:  mentorUsecase,
			InternalConfig: internalConfig,
		}
	})
	return mentorControllerInstance
}

func (ctrl *MentorController) GetProfile(w http.ResponseWriter, r *http.Request) {
	const operation = "MentorController.GetProfile"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.MentorUsecase.GetProfile(ctx, chi.URLParam(r, constvars.URLParamMentorID))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, result)
}

func (ctrl *MentorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	const operation = "MentorController.UpdateProfile"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.UpdateMentorProfile)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	utils.SanitizeUpdateMentorProfileRequest(request)
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.MentorUsecase.UpdateProfile(ctx, chi.URLParam(r, constvars.URLParamMentorID), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	ctrl.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, result)
}

// UploadProfileImage expects a multipart form with the file under "image".
func (ctrl *MentorController) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	const operation = "MentorController.UploadProfileImage"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	maxMemory := ctrl.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB * 1024 * 1024
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		ctrl.Log.Error(operation+" error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if tooLarge, ok := bodyTooLarge(err); ok {
			utils.BuildErrorResponse(ctrl.Log, w, tooLarge)
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile(constvars.FormFileImage)
	if err != nil {
		ctrl.Log.Error(operation+" error reading form file",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	request := &requests.UploadProfileImage{
		Kind:        chi.URLParam(r, constvars.URLParamImageKind),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(constvars.HeaderContentType),
		Size:        fileHeader.Size,
	}
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.MentorUsecase.UploadProfileImage(ctx, chi.URLParam(r, constvars.URLParamMentorID), request, file)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	ctrl.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDataKey, request.Kind),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadProfileImageSuccessMessage, result)
}

func (ctrl *MentorController) GetCompanyProfile(w http.ResponseWriter, r *http.Request) {
	const operation = "MentorController.GetCompanyProfile"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.MentorUsecase.GetCompanyProfile(ctx, chi.URLParam(r, constvars.URLParamMentorID))
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCompanyProfileSuccessMessage, result)
}

func (ctrl *MentorController) SaveCompanyProfile(w http.ResponseWriter, r *http.Request) {
	const operation = "MentorController.SaveCompanyProfile"
	requestID, ok := requestIDFromContext(ctrl.Log, w, r, operation)
	if !ok {
		return
	}

	request := new(requests.SaveCompanyProfile)
	if !decodeJSON(ctrl.Log, w, r, operation, requestID, request) {
		return
	}
	utils.SanitizeSaveCompanyProfileRequest(request)
	if !validateRequest(ctrl.Log, w, operation, requestID, request) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), usecaseTimeout)
	defer cancel()

	result, err := ctrl.MentorUsecase.SaveCompanyProfile(ctx, chi.URLParam(r, constvars.URLParamMentorID), request)
	if err != nil {
		handleUsecaseError(ctrl.Log, w, operation, requestID, err)
		return
	}

	ctrl.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCompanyProfileSuccessMessage, result)
}
