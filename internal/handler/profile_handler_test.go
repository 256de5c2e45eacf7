package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"little-lemon/internal/middleware"
	"little-lemon/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProfileService is a mock implementation of ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context) (*model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileService) Save(ctx context.Context, profile *model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func TestProfileHandler_Get(t *testing.T) {
	tests := []struct {
		name           string
		mockReturn     *model.Profile
		mockError      error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			mockReturn:     &model.Profile{FirstName: "Tilly", Email: "tilly@example.com"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Not found",
			mockError:      model.ErrProfileNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeProfileNotFound,
		},
		{
			name:           "Storage error",
			mockError:      errors.New("storage unavailable"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProfileService)
			mockService.On("Get", mock.Anything).Return(tt.mockReturn, tt.mockError)

			h := NewProfileHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
			rec := httptest.NewRecorder()

			h.Get(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var got model.Profile
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, *tt.mockReturn, got)
			} else {
				var errResp model.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedCode, errResp.Error)
				assert.NotEmpty(t, errResp.Message)
			}
		})
	}
}

func TestProfileHandler_Save(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockError      error
		expectService  bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Success",
			body:           `{"firstName": "Tilly", "email": "tilly@example.com"}`,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid JSON",
			body:           `{"firstName": `,
			expectService:  false,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeInvalidJSON,
		},
		{
			name:           "Validation failure maps to 400",
			body:           `{"email": "tilly@example.com"}`,
			mockError:      model.ErrMissingFirstName,
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeMissingField,
		},
		{
			name:           "Storage error maps to 500",
			body:           `{"firstName": "Tilly", "email": "tilly@example.com"}`,
			mockError:      errors.New("storage unavailable"),
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   model.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockProfileService)
			if tt.expectService {
				mockService.On("Save", mock.Anything, mock.Anything).Return(tt.mockError)
			}

			h := NewProfileHandler(mockService, zerolog.Nop())

			req := httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Save(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				var errResp model.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedCode, errResp.Error)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestProfileHandler_ErrorEchoesRequestID(t *testing.T) {
	mockService := new(MockProfileService)
	mockService.On("Get", mock.Anything).Return(nil, model.ErrProfileNotFound)

	h := NewProfileHandler(mockService, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-123"))
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var errResp model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, model.ErrCodeProfileNotFound, errResp.Error)
	assert.Equal(t, "req-123", errResp.CorrelationID)
}

func TestProfileHandler_MethodNotAllowed(t *testing.T) {
	h := NewProfileHandler(new(MockProfileService), zerolog.Nop())

	req := httptest.NewRequest(http.MethodDelete, "/api/profile", nil)
	rec := httptest.NewRecorder()
	h.Get(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	h.Save(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
