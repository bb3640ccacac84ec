package availability

import (
	"context"
	"mentor-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockMentorRepository struct {
	mock.Mock
}

func (m *MockMentorRepository) FindByID(ctx context.Context, mentorID string) (*models.Mentor, error) {
	args := m.Called(ctx, mentorID)
	mentor, _ := args.Get(0).(*models.Mentor)
	return mentor, args.Error(1)
}

func (m *MockMentorRepository) UpdateProfile(ctx context.Context, mentorID string, update *models.MentorProfileUpdate) error {
	args := m.Called(ctx, mentorID, update)
	return args.Error(0)
}

func (m *MockMentorRepository) FindAvailability(ctx context.Context, mentorID string) (*models.AvailabilitySnapshot, error) {
	args := m.Called(ctx, mentorID)
	snapshot, _ := args.Get(0).(*models.AvailabilitySnapshot)
	return snapshot, args.Error(1)
}

func (m *MockMentorRepository) SaveAvailability(ctx context.Context, mentorID string, snapshot *models.AvailabilitySnapshot) error {
	args := m.Called(ctx, mentorID, snapshot)
	return args.Error(0)
}

func (m *MockMentorRepository) FindCompanyProfile(ctx context.Context, mentorID string) (*models.CompanyProfile, error) {
	args := m.Called(ctx, mentorID)
	profile, _ := args.Get(0).(*models.CompanyProfile)
	return profile, args.Error(1)
}

func (m *MockMentorRepository) SaveCompanyProfile(ctx context.Context, mentorID string, profile *models.CompanyProfile) error {
	args := m.Called(ctx, mentorID, profile)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAvailabilitySaved(ctx context.Context, event *models.AvailabilitySavedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
