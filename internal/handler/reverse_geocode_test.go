package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"countrymap/internal/models"
	"countrymap/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCountryCodeResolver is a mock implementation of the CountryCodeResolver interface
type MockCountryCodeResolver struct {
	mock.Mock
}

func (m *MockCountryCodeResolver) ResolveCountryCode(ctx context.Context, lat float64, lon float64) (models.CountryCode, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(models.CountryCode), args.Error(1)
}

func TestReverseGeocodeHandler_ReverseGeocode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		callsService   bool
		lat            float64
		lon            float64
		mockCode       models.CountryCode
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameters",
			query:          "",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameters 'lat' and 'lon'"},
		},
		{
			name:           "invalid latitude",
			query:          "lat=north&lon=10",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid latitude format"},
		},
		{
			name:           "invalid longitude",
			query:          "lat=10&lon=east",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid longitude format"},
		},
		{
			name:           "successful resolution",
			query:          "lat=35.681236&lon=139.767125",
			callsService:   true,
			lat:            35.681236,
			lon:            139.767125,
			mockCode:       "JP",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"country_code": "JP"},
		},
		{
			name:           "out of range coordinates reach the service",
			query:          "lat=95&lon=190",
			callsService:   true,
			lat:            95,
			lon:            190,
			mockCode:       "AQ",
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"country_code": "AQ"},
		},
		{
			name:           "no country at coordinates",
			query:          "lat=0&lon=-30",
			callsService:   true,
			lat:            0,
			lon:            -30,
			mockError:      fmt.Errorf("service: %w: %w", service.ErrResolutionFailed, service.ErrNoCountryCode),
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"error": "no country found at the specified coordinates"},
		},
		{
			name:           "upstream error",
			query:          "lat=35.681236&lon=139.767125",
			callsService:   true,
			lat:            35.681236,
			lon:            139.767125,
			mockError:      fmt.Errorf("service: %w: %w", service.ErrResolutionFailed, assert.AnError),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   map[string]interface{}{"error": "reverse geocoding failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockCountryCodeResolver)
			handler := NewReverseGeocodeHandler(mockSvc)

			if tt.callsService {
				mockSvc.On("ResolveCountryCode", mock.Anything, tt.lat, tt.lon).Return(tt.mockCode, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/reverse-geocode?"+tt.query, nil)
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.ReverseGeocode(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			if tt.callsService {
				mockSvc.AssertExpectations(t)
			} else {
				mockSvc.AssertNotCalled(t, "ResolveCountryCode", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
