package routers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mentor-service/internal/app/config"
	"mentor-service/internal/app/delivery/http/controllers"
	"mentor-service/internal/app/delivery/http/middlewares"
	"mentor-service/internal/app/models"
	"mentor-service/internal/pkg/constvars"
	"mentor-service/internal/pkg/dto/requests"
	"mentor-service/internal/pkg/dto/responses"
	"mentor-service/internal/pkg/exceptions"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testMentorID  = "665f1c2ab7e4a1d2c3b4a5f6"
	testMentorURL = "/api/v1/mentors/" + testMentorID
)

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) availability(args mock.Arguments) (*responses.Availability, error) {
	result, _ := args.Get(0).(*responses.Availability)
	return result, args.Error(1)
}

func (m *MockAvailabilityUsecase) dateAvailability(args mock.Arguments) (*responses.DateAvailability, error) {
	result, _ := args.Get(0).(*responses.DateAvailability)
	return result, args.Error(1)
}

func (m *MockAvailabilityUsecase) GetAvailability(ctx context.Context, mentorID string) (*responses.Availability, error) {
	return m.availability(m.Called(ctx, mentorID))
}

func (m *MockAvailabilityUsecase) AddWeeklySlot(ctx context.Context, mentorID string, request *requests.AddWeeklySlot) (*responses.Availability, error) {
	return m.availability(m.Called(ctx, mentorID, request))
}

func (m *MockAvailabilityUsecase) UpdateWeeklySlot(ctx context.Context, mentorID string, index int, request *requests.UpdateSlot) (*responses.Availability, error) {
	return m.availability(m.Called(ctx, mentorID, index, request))
}

func (m *MockAvailabilityUsecase) RemoveWeeklySlot(ctx context.Context, mentorID string, index int) (*responses.Availability, error) {
	return m.availability(m.Called(ctx, mentorID, index))
}

func (m *MockAvailabilityUsecase) GetDateAvailability(ctx context.Context, mentorID, date string) (*responses.DateAvailability, error) {
	return m.dateAvailability(m.Called(ctx, mentorID, date))
}

func (m *MockAvailabilityUsecase) AddDateOverrideSlot(ctx context.Context, mentorID, date string) (*responses.DateAvailability, error) {
	return m.dateAvailability(m.Called(ctx, mentorID, date))
}

func (m *MockAvailabilityUsecase) UpdateDateOverrideSlot(ctx context.Context, mentorID, date string, index int, request *requests.UpdateSlot) (*responses.DateAvailability, error) {
	return m.dateAvailability(m.Called(ctx, mentorID, date, index, request))
}

func (m *MockAvailabilityUsecase) RemoveDateOverrideSlot(ctx context.Context, mentorID, date string, index int) (*responses.DateAvailability, error) {
	return m.dateAvailability(m.Called(ctx, mentorID, date, index))
}

func (m *MockAvailabilityUsecase) SetDateUnavailable(ctx context.Context, mentorID, date string) (*responses.DateAvailability, error) {
	return m.dateAvailability(m.Called(ctx, mentorID, date))
}

func (m *MockAvailabilityUsecase) ClearDateOverride(ctx context.Context, mentorID, date string) (*responses.DateAvailability, error) {
	return m.dateAvailability(m.Called(ctx, mentorID, date))
}

func (m *MockAvailabilityUsecase) SaveAvailability(ctx context.Context, mentorID string) (*responses.SaveAvailability, error) {
	args := m.Called(ctx, mentorID)
	result, _ := args.Get(0).(*responses.SaveAvailability)
	return result, args.Error(1)
}

func (m *MockAvailabilityUsecase) DiscardDraft(ctx context.Context, mentorID string) error {
	args := m.Called(ctx, mentorID)
	return args.Error(0)
}

type MockTimeUsecase struct {
	mock.Mock
}

func (m *MockTimeUsecase) Encode(ctx context.Context, request *requests.EncodeTime) (*responses.TimeValue, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.TimeValue)
	return result, args.Error(1)
}

func (m *MockTimeUsecase) Decode(ctx context.Context, value string) (*responses.TimeValue, error) {
	args := m.Called(ctx, value)
	result, _ := args.Get(0).(*responses.TimeValue)
	return result, args.Error(1)
}

type MockMentorUsecase struct {
	mock.Mock
}

func (m *MockMentorUsecase) GetProfile(ctx context.Context, mentorID string) (*responses.MentorProfile, error) {
	args := m.Called(ctx, mentorID)
	result, _ := args.Get(0).(*responses.MentorProfile)
	return result, args.Error(1)
}

func (m *MockMentorUsecase) UpdateProfile(ctx context.Context, mentorID string, request *requests.UpdateMentorProfile) (*responses.MentorProfile, error) {
	args := m.Called(ctx, mentorID, request)
	result, _ := args.Get(0).(*responses.MentorProfile)
	return result, args.Error(1)
}

func (m *MockMentorUsecase) UploadProfileImage(ctx context.Context, mentorID string, request *requests.UploadProfileImage, file io.Reader) (*responses.MentorProfile, error) {
	args := m.Called(ctx, mentorID, request, file)
	result, _ := args.Get(0).(*responses.MentorProfile)
	return result, args.Error(1)
}

func (m *MockMentorUsecase) GetCompanyProfile(ctx context.Context, mentorID string) (*responses.CompanyProfile, error) {
	args := m.Called(ctx, mentorID)
	result, _ := args.Get(0).(*responses.CompanyProfile)
	return result, args.Error(1)
}

func (m *MockMentorUsecase) SaveCompanyProfile(ctx context.Context, mentorID string, request *requests.SaveCompanyProfile) (*responses.CompanyProfile, error) {
	args := m.Called(ctx, mentorID, request)
	result, _ := args.Get(0).(*responses.CompanyProfile)
	return result, args.Error(1)
}

type routerFixture struct {
	router       *chi.Mux
	availability *MockAvailabilityUsecase
	time         *MockTimeUsecase
	mentor       *MockMentorUsecase
}

func newRouterFixture() *routerFixture {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			MaxRequests:                1000,
			MaxTimeRequestsPerSeconds:  1,
			RequestBodyLimitInMegabyte: 1,
		},
		Minio: config.AppMinio{ProfilePictureMaxUploadSizeInMB: 1},
	}

	f := &routerFixture{
		router:       chi.NewRouter(),
		availability: new(MockAvailabilityUsecase),
		time:         new(MockTimeUsecase),
		mentor:       new(MockMentorUsecase),
	}

	SetupRoutes(
		f.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		&controllers.AvailabilityController{Log: logger, AvailabilityUsecase: f.availability, InternalConfig: internalConfig},
		&controllers.TimeController{Log: logger, TimeUsecase: f.time},
		&controllers.MentorController{Log: logger, MentorUsecase: f.mentor, InternalConfig: internalConfig},
	)
	return f
}

func (f *routerFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func responseMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Message
}

func TestAvailabilityRoutes(t *testing.T) {
	t.Run("Get Availability", func(t *testing.T) {
		f := newRouterFixture()
		f.availability.On("GetAvailability", mock.Anything, testMentorID).
			Return(&responses.Availability{WeeklySlots: []models.WeeklySlot{}}, nil)

		rr := f.do(http.MethodGet, testMentorURL+"/availability", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		f.availability.AssertExpectations(t)
	})

	t.Run("Add Weekly Slot", func(t *testing.T) {
		f := newRouterFixture()
		f.availability.On("AddWeeklySlot", mock.Anything, testMentorID, &requests.AddWeeklySlot{Day: "Tuesday"}).
			Return(&responses.Availability{}, nil)

		rr := f.do(http.MethodPost, testMentorURL+"/availability/weekly", map[string]string{"day": "Tuesday"})

		assert.Equal(t, http.StatusCreated, rr.Code)
		f.availability.AssertExpectations(t)
	})

	t.Run("Add Weekly Slot With Unknown Day", func(t *testing.T) {
		f := newRouterFixture()

		rr := f.do(http.MethodPost, testMentorURL+"/availability/weekly", map[string]string{"day": "Someday"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.availability.AssertNotCalled(t, "AddWeeklySlot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Add Weekly Slot With Malformed JSON", func(t *testing.T) {
		f := newRouterFixture()
		req := httptest.NewRequest(http.MethodPost, testMentorURL+"/availability/weekly", strings.NewReader("{"))
		rr := httptest.NewRecorder()

		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Update Weekly Slot", func(t *testing.T) {
		f := newRouterFixture()
		f.availability.On("UpdateWeeklySlot", mock.Anything, testMentorID, 2, &requests.UpdateSlot{Field: "endTime", Value: "13:00"}).
			Return(&responses.Availability{}, nil)

		rr := f.do(http.MethodPatch, testMentorURL+"/availability/weekly/2", map[string]string{"field": " endTime ", "value": "13:00"})

		assert.Equal(t, http.StatusOK, rr.Code)
		f.availability.AssertExpectations(t)
	})

	t.Run("Update Weekly Slot Invalid Range", func(t *testing.T) {
		f := newRouterFixture()
		f.availability.On("UpdateWeeklySlot", mock.Anything, testMentorID, 0, mock.Anything).
			Return(nil, exceptions.ErrAvailabilityInvalidTimeRange(errors.New("start after end")))

		rr := f.do(http.MethodPatch, testMentorURL+"/availability/weekly/0", map[string]string{"field": "startTime", "value": "18:00"})

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Equal(t, constvars.ErrClientInvalidTimeRange, responseMessage(t, rr))
	})

	t.Run("Remove Weekly Slot With Bad Index", func(t *testing.T) {
		f := newRouterFixture()

		rr := f.do(http.MethodDelete, testMentorURL+"/availability/weekly/abc", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.availability.AssertNotCalled(t, "RemoveWeeklySlot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Remove Weekly Slot Out Of Range", func(t *testing.T) {
		f := newRouterFixture()
		f.availability.On("RemoveWeeklySlot", mock.Anything, testMentorID, 7).
			Return(nil, exceptions.ErrAvailabilityIndexOutOfRange(errors.New("index 7")))

		rr := f.do(http.MethodDelete, testMentorURL+"/availability/weekly/7", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Date Override Routes", func(t *testing.T) {
		f := newRouterFixture()
		date := "2025-03-14"
		result := &responses.DateAvailability{Date: date, Kind: models.OverrideSlots}

		f.availability.On("GetDateAvailability", mock.Anything, testMentorID, date).Return(result, nil)
		f.availability.On("AddDateOverrideSlot", mock.Anything, testMentorID, date).Return(result, nil)
		f.availability.On("UpdateDateOverrideSlot", mock.Anything, testMentorID, date, 0, &requests.UpdateSlot{Field: "startTime", Value: "10:00"}).Return(result, nil)
		f.availability.On("RemoveDateOverrideSlot", mock.Anything, testMentorID, date, 0).Return(result, nil)
		f.availability.On("SetDateUnavailable", mock.Anything, testMentorID, date).Return(result, nil)
		f.availability.On("ClearDateOverride", mock.Anything, testMentorID, date).Return(result, nil)

		base := testMentorURL + "/availability/dates/" + date
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, base, nil).Code)
		assert.Equal(t, http.StatusCreated, f.do(http.MethodPost, base+"/slots", nil).Code)
		assert.Equal(t, http.StatusOK, f.do(http.MethodPatch, base+"/slots/0", map[string]string{"field": "startTime", "value": "10:00"}).Code)
		assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, base+"/slots/0", nil).Code)
		assert.Equal(t, http.StatusOK, f.do(http.MethodPut, base+"/unavailable", nil).Code)
		assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, base, nil).Code)
		f.availability.AssertExpectations(t)
	})

	t.Run("Save Availability", func(t *testing.T) {
		f := newRouterFixture()
		f.availability.On("SaveAvailability", mock.Anything, testMentorID).
			Return(&responses.SaveAvailability{MentorID: testMentorID, WeeklySlotCount: 1}, nil)

		rr := f.do(http.MethodPost, testMentorURL+"/availability/save", nil)

		assert.Equal(t, http.StatusAccepted, rr.Code)
		assert.Equal(t, constvars.SaveAvailabilitySuccessMessage, responseMessage(t, rr))
	})

	t.Run("Save Availability Fails", func(t *testing.T) {
		f := newRouterFixture()
		f.availability.On("SaveAvailability", mock.Anything, testMentorID).
			Return(nil, exceptions.ErrAvailabilitySaveFailed(errors.New("mongo down")))

		rr := f.do(http.MethodPost, testMentorURL+"/availability/save", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Equal(t, constvars.ErrClientSaveFailed, responseMessage(t, rr))
	})

	t.Run("Discard Draft", func(t *testing.T) {
		f := newRouterFixture()
		f.availability.On("DiscardDraft", mock.Anything, testMentorID).Return(nil)

		rr := f.do(http.MethodDelete, testMentorURL+"/availability/draft", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.availability.AssertExpectations(t)
	})
}

func TestTimeRoutes(t *testing.T) {
	t.Run("Encode", func(t *testing.T) {
		f := newRouterFixture()
		f.time.On("Encode", mock.Anything, &requests.EncodeTime{Hour: 1, Minute: "30", Period: "PM"}).
			Return(&responses.TimeValue{Time24: "13:30"}, nil)

		rr := f.do(http.MethodPost, "/api/v1/time/encode", map[string]interface{}{"hour": 1, "minute": "30", "period": "PM"})

		assert.Equal(t, http.StatusOK, rr.Code)
		f.time.AssertExpectations(t)
	})

	t.Run("Encode Rejects Off Picker Minute", func(t *testing.T) {
		f := newRouterFixture()

		rr := f.do(http.MethodPost, "/api/v1/time/encode", map[string]interface{}{"hour": 1, "minute": "10", "period": "PM"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.time.AssertNotCalled(t, "Encode", mock.Anything, mock.Anything)
	})

	t.Run("Decode", func(t *testing.T) {
		f := newRouterFixture()
		f.time.On("Decode", mock.Anything, "00:05").Return(&responses.TimeValue{Time24: "00:05", Hour: 12}, nil)

		rr := f.do(http.MethodGet, "/api/v1/time/decode?value=00:05", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestMentorRoutes(t *testing.T) {
	t.Run("Get Profile Not Found", func(t *testing.T) {
		f := newRouterFixture()
		f.mentor.On("GetProfile", mock.Anything, testMentorID).Return(nil, exceptions.ErrMentorNotExist(nil))

		rr := f.do(http.MethodGet, testMentorURL+"/profile", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, constvars.ErrClientMentorNotFound, responseMessage(t, rr))
	})

	t.Run("Update Profile Sanitizes Before Usecase", func(t *testing.T) {
		f := newRouterFixture()
		f.mentor.On("UpdateProfile", mock.Anything, testMentorID, mock.MatchedBy(func(request *requests.UpdateMentorProfile) bool {
			return request.Email != nil && *request.Email == "asha@example.com" && request.Name == nil
		})).Return(&responses.MentorProfile{ID: testMentorID}, nil)

		rr := f.do(http.MethodPatch, testMentorURL+"/profile", map[string]string{"email": " Asha@Example.com "})

		assert.Equal(t, http.StatusOK, rr.Code)
		f.mentor.AssertExpectations(t)
	})

	t.Run("Update Profile Invalid Phone", func(t *testing.T) {
		f := newRouterFixture()

		rr := f.do(http.MethodPatch, testMentorURL+"/profile", map[string]string{"phone": "12ab"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.mentor.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upload Avatar", func(t *testing.T) {
		f := newRouterFixture()
		f.mentor.On("UploadProfileImage", mock.Anything, testMentorID, mock.MatchedBy(func(request *requests.UploadProfileImage) bool {
			return request.Kind == "avatar" && request.FileName == "me.png" && request.ContentType == "image/png" && request.Size == 3
		}), mock.Anything).Return(&responses.MentorProfile{ID: testMentorID}, nil)

		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="me.png"`)
		header.Set(constvars.HeaderContentType, "image/png")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("png"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, testMentorURL+"/profile/images/avatar", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.mentor.AssertExpectations(t)
	})

	t.Run("Upload Unknown Image Kind", func(t *testing.T) {
		f := newRouterFixture()

		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("image", "me.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("png"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, testMentorURL+"/profile/images/wallpaper", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Upload Over Body Limit", func(t *testing.T) {
		f := newRouterFixture()

		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("image", "huge.png")
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("x"), 2*1024*1024))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, testMentorURL+"/profile/images/avatar", body)
		req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		assert.Equal(t, constvars.ErrClientRequestBodyTooLarge, responseMessage(t, rr))
		f.mentor.AssertNotCalled(t, "UploadProfileImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Save Company Profile Requires Name", func(t *testing.T) {
		f := newRouterFixture()

		rr := f.do(http.MethodPut, testMentorURL+"/company", map[string]string{"companyName": "   "})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Save Company Profile", func(t *testing.T) {
		f := newRouterFixture()
		f.mentor.On("SaveCompanyProfile", mock.Anything, testMentorID, &requests.SaveCompanyProfile{CompanyName: "Acme", Website: "https://acme.com"}).
			Return(&responses.CompanyProfile{CompanyName: "Acme"}, nil)

		rr := f.do(http.MethodPut, testMentorURL+"/company", map[string]string{"companyName": "Acme", "website": "https://acme.com"})

		assert.Equal(t, http.StatusOK, rr.Code)
		f.mentor.AssertExpectations(t)
	})
}

func TestUnknownRoute(t *testing.T) {
	f := newRouterFixture()

	rr := f.do(http.MethodGet, "/api/v1/nowhere", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, constvars.ErrClientRouteNotFound, responseMessage(t, rr))
}
