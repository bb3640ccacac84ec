package mentors

import (
	"context"
	"fmt"
	"io"
	"mentor-service/internal/app/config"
	"mentor-service/internal/app/contracts"
	"mentor-service/internal/app/models"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/dto/requests"
	"mentor-service/internal/pkg/dto/responses"
	"mentor-service/internal/pkg/exceptions"
	"mentor-service/internal/pkg/utils"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	mentorUsecaseInstance contracts.MentorUsecase
	onceMentorUsecase     sync.Once
)

type mentorUsecase struct {
	MentorRepository contracts.MentorRepository
	Storage          contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewMentorUsecase(
	mentorRepository contracts.MentorRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MentorUsecase {
	onceMentorUsecase.Do(func() {
		mentorUsecaseInstance = newMentorUsecase(mentorRepository, storage, internalConfig, logger)
	})
	return mentorUsecaseInstance
}

func newMentorUsecase(
	mentorRepository contracts.MentorRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *mentorUsecase {
	return &mentorUsecase{
		MentorRepository: mentorRepository,
		Storage:          storage,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *mentorUsecase) GetProfile(ctx context.Context, mentorID string) (*responses.MentorProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("mentorUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMentorIDKey, mentorID),
	)

	mentor, err := uc.findMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	response := uc.buildMentorProfileResponse(ctx, mentor)

	uc.Log.Info("mentorUsecase.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMentorIDKey, mentorID),
	)
	return response, nil
}

func (uc *mentorUsecase) UpdateProfile(ctx context.Context, mentorID string, request *requests.UpdateMentorProfile) (*responses.MentorProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("mentorUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMentorIDKey, mentorID),
	)

	if _, err := uc.findMentor(ctx, mentorID); err != nil {
		return nil, err
	}

	update := &models.MentorProfileUpdate{
		Name:          request.Name,
		Title:         request.Title,
		Bio:           request.Bio,
		Email:         request.Email,
		Phone:         request.Phone,
		CountryCode:   request.CountryCode,
		Gender:        request.Gender,
		Expertise:     request.Expertise,
		LinkedIn:      request.LinkedIn,
		BankName:      request.BankName,
		AccountNumber: request.AccountNumber,
		IFSC:          request.IFSC,
		UPIID:         request.UPIID,
	}

	err := uc.MentorRepository.UpdateProfile(ctx, mentorID, update)
	if err != nil {
		uc.Log.Error("mentorUsecase.UpdateProfile error updating mentor profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMentorIDKey, mentorID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("mentorUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMentorIDKey, mentorID),
	)
	return uc.GetProfile(ctx, mentorID)
}

// UploadProfileImage stores the image under the mentor's object prefix and
// points the avatar or banner field at it.
func (uc *mentorUsecase) UploadProfileImage(ctx context.Context, mentorID string, request *requests.UploadProfileImage, file io.Reader) (*responses.MentorProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("mentorUsecase.UploadProfileImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMentorIDKey, mentorID),
		zap.String(constvars.LoggingDataKey, request.Kind),
	)

	err := utils.ValidateImageUpload(request.ContentType, request.Size, uc.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB)
	if err != nil {
		return nil, exceptions.ErrImageValidation(err)
	}

	if _, err := uc.findMentor(ctx, mentorID); err != nil {
		return nil, err
	}

	extension := strings.ToLower(filepath.Ext(request.FileName))
	objectName := utils.GenerateMentorObjectName(mentorID, request.Kind, extension)
	bucketName := uc.InternalConfig.Minio.BucketName

	objectName, err = uc.Storage.UploadFile(ctx, file, request.Size, request.ContentType, bucketName, objectName)
	if err != nil {
		uc.Log.Error("mentorUsecase.UploadProfileImage error uploading image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	update := new(models.MentorProfileUpdate)
	if request.Kind == constvars.ProfileImageKindBanner {
		update.BannerImage = &objectName
	} else {
		update.ProfileImage = &objectName
	}

	err = uc.MentorRepository.UpdateProfile(ctx, mentorID, update)
	if err != nil {
		uc.Log.Error("mentorUsecase.UploadProfileImage error saving image reference",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("mentorUsecase.UploadProfileImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return uc.GetProfile(ctx, mentorID)
}

// GetCompanyProfile returns an empty profile when none has been saved yet.
func (uc *mentorUsecase) GetCompanyProfile(ctx context.Context, mentorID string) (*responses.CompanyProfile, error) {
	var response *responses.CompanyProfile
	err := utils.LogOperation(uc.Log, "mentorUsecase.GetCompanyProfile", utils.GetRequestID(ctx), func() error {
		profile, err := uc.MentorRepository.FindCompanyProfile(ctx, mentorID)
		if err != nil {
			return err
		}
		response = buildCompanyProfileResponse(profile)
		return nil
	})
	return response, err
}

func (uc *mentorUsecase) SaveCompanyProfile(ctx context.Context, mentorID string, request *requests.SaveCompanyProfile) (*responses.CompanyProfile, error) {
	var response *responses.CompanyProfile
	err := utils.LogOperation(uc.Log, "mentorUsecase.SaveCompanyProfile", utils.GetRequestID(ctx), func() error {
		existing, err := uc.MentorRepository.FindCompanyProfile(ctx, mentorID)
		if err != nil {
			return err
		}

		profile := &models.CompanyProfile{
			CompanyName: request.CompanyName,
			Website:     request.Website,
			Industry:    request.Industry,
			Size:        request.Size,
			About:       request.About,
			Address:     request.Address,
		}
		if existing != nil && !existing.CreatedAt.IsZero() {
			profile.CreatedAt = existing.CreatedAt
			profile.SetUpdatedAt()
		} else {
			profile.SetCreatedAtUpdatedAt()
		}

		err = uc.MentorRepository.SaveCompanyProfile(ctx, mentorID, profile)
		if err != nil {
			return err
		}
		response = buildCompanyProfileResponse(profile)
		return nil
	})
	return response, err
}

func (uc *mentorUsecase) findMentor(ctx context.Context, mentorID string) (*models.Mentor, error) {
	mentor, err := uc.MentorRepository.FindByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, exceptions.ErrMentorNotExist(fmt.Errorf("mentor %s not found", mentorID))
	}
	return mentor, nil
}

func (uc *mentorUsecase) buildMentorProfileResponse(ctx context.Context, mentor *models.Mentor) *responses.MentorProfile {
	return &responses.MentorProfile{
		ID:              mentor.ID,
		Name:            mentor.Name,
		Title:           mentor.Title,
		Bio:             mentor.Bio,
		Email:           mentor.Email,
		Phone:           mentor.Phone,
		CountryCode:     mentor.CountryCode,
		Gender:          mentor.Gender,
		Expertise:       mentor.Expertise,
		LinkedIn:        mentor.LinkedIn,
		ProfileImageURL: uc.presignedURL(ctx, mentor.ProfileImage),
		BannerImageURL:  uc.presignedURL(ctx, mentor.BannerImage),
		BankName:        mentor.BankName,
		AccountNumber:   mentor.AccountNumber,
		IFSC:            mentor.IFSC,
		UPIID:           mentor.UPIID,
	}
}

// presignedURL returns "" for a missing object or when presigning fails;
// a broken image link should not fail the whole profile read.
func (uc *mentorUsecase) presignedURL(ctx context.Context, objectName string) string {
	if objectName == "" {
		return ""
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Minio.BucketName, objectName, expiry)
	if err != nil {
		uc.Log.Warn("mentorUsecase.presignedURL failed",
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return ""
	}
	return url
}

func buildCompanyProfileResponse(profile *models.CompanyProfile) *responses.CompanyProfile {
	if profile == nil {
		return &responses.CompanyProfile{}
	}
	return &responses.CompanyProfile{
		CompanyName: profile.CompanyName,
		Website:     profile.Website,
		Industry:    profile.Industry,
		Size:        profile.Size,
		About:       profile.About,
		Address:     profile.Address,
	}
}
