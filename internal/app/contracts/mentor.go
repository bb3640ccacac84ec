package contracts

import (
	"context"
	"io"
	"mentor-service/internal/app/models"
	"mentor-service/internal/pkg/dto/requests"
	"mentor-service/internal/pkg/dto/responses"
)

type MentorRepository interface {
	FindByID(ctx context.Context, mentorID string) (*models.Mentor, error)
	UpdateProfile(ctx context.Context, mentorID string, update *models.MentorProfileUpdate) error
	FindAvailability(ctx context.Context, mentorID string) (*models.AvailabilitySnapshot, error)
	SaveAvailability(ctx context.Context, mentorID string, snapshot *models.AvailabilitySnapshot) error
	FindCompanyProfile(ctx context.Context, mentorID string) (*models.CompanyProfile, error)
	SaveCompanyProfile(ctx context.Context, mentorID string, profile *models.CompanyProfile) error
}

type MentorUsecase interface {
	GetProfile(ctx context.Context, mentorID string) (*responses.MentorProfile, error)
	UpdateProfile(ctx context.Context, mentorID string, request *requests.UpdateMentorProfile) (*responses.MentorProfile, error)
	UploadProfileImage(ctx context.Context, mentorID string, request *requests.UploadProfileImage, file io.Reader) (*responses.MentorProfile, error)
	GetCompanyProfile(ctx context.Context, mentorID string) (*responses.CompanyProfile, error)
	SaveCompanyProfile(ctx context.Context, mentorID string, request *requests.SaveCompanyProfile) (*responses.CompanyProfile, error)
}
