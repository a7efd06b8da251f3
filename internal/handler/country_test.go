package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"countrymap/internal/client"
	"countrymap/internal/models"
	"countrymap/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCountryFetcher is a mock implementation of the CountryFetcher interface
type MockCountryFetcher struct {
	mock.Mock
}

func (m *MockCountryFetcher) FetchCountry(ctx context.Context, code models.CountryCode) (*models.CountryRecord, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(*models.CountryRecord), args.Error(1)
}

func TestCountryHandler_GetCountry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		param          string
		callsService   bool
		code           models.CountryCode
		mockRecord     *models.CountryRecord
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "invalid code",
			param:          "usa",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid country code"},
		},
		{
			name:         "lower case code is normalized",
			param:        "jp",
			callsService: true,
			code:         "JP",
			mockRecord: &models.CountryRecord{
				Name:       models.CountryName{Common: "Japan"},
				Capital:    []string{"Tokyo"},
				Population: 125836021,
				Region:     "Asia",
				Area:       377930,
				Flag:       "🇯🇵",
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"name":       map[string]interface{}{"common": "Japan"},
				"capital":    []interface{}{"Tokyo"},
				"population": float64(125836021),
				"region":     "Asia",
				"area":       float64(377930),
				"flag":       "🇯🇵",
			},
		},
		{
			name:           "country not found",
			param:          "ZZ",
			callsService:   true,
			code:           "ZZ",
			mockError:      fmt.Errorf("service: %w: %w", service.ErrFetchFailed, client.ErrCountryNotFound),
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"error": "country not found"},
		},
		{
			name:           "upstream error",
			param:          "DE",
			callsService:   true,
			code:           "DE",
			mockError:      fmt.Errorf("service: %w: %w", service.ErrFetchFailed, assert.AnError),
			expectedStatus: http.StatusBadGateway,
			expectedBody:   map[string]interface{}{"error": "country lookup failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockCountryFetcher)
			handler := NewCountryHandler(mockSvc)

			if tt.callsService {
				mockSvc.On("FetchCountry", mock.Anything, tt.code).Return(tt.mockRecord, tt.mockError)
			}

			// Create request
			req := httptest.NewRequest(http.MethodGet, "/countries/"+tt.param, nil)
			w := httptest.NewRecorder()

			// Create Gin context
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			c.Params = gin.Params{{Key: "code", Value: tt.param}}

			// Execute
			handler.GetCountry(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)

			var actualBody interface{}
			err := json.Unmarshal(w.Body.Bytes(), &actualBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, actualBody)

			if tt.callsService {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}
