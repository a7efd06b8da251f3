package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"countrymap/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLookupLister is a mock implementation of the LookupLister interface
type MockLookupLister struct {
	mock.Mock
}

func (m *MockLookupLister) ListRecentLookups(ctx context.Context, limit int) ([]models.Lookup, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Lookup), args.Error(1)
}

func TestLookupHandler_ListLookups(t *testing.T) {
	gin.SetMode(gin.TestMode)

	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	lookups := []models.Lookup{
		{ID: 2, Latitude: 48.85, Longitude: 2.35, CountryCode: "FR", CountryName: "France", Outcome: models.OutcomeResolved, CreatedAt: createdAt},
	}

	tests := []struct {
		name           string
		query          string
		callsRepo      bool
		limit          int
		mockError      error
		expectedStatus int
	}{
		{name: "default limit", query: "", callsRepo: true, limit: 50, expectedStatus: http.StatusOK},
		{name: "explicit limit", query: "?limit=10", callsRepo: true, limit: 10, expectedStatus: http.StatusOK},
		{name: "limit too large", query: "?limit=501", expectedStatus: http.StatusBadRequest},
		{name: "limit not a number", query: "?limit=ten", expectedStatus: http.StatusBadRequest},
		{name: "repository error", query: "", callsRepo: true, limit: 50, mockError: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockLookupLister)
			handler := NewLookupHandler(mockRepo)

			if tt.callsRepo {
				mockRepo.On("ListRecentLookups", mock.Anything, tt.limit).Return(lookups, tt.mockError)
			}

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/lookups"+tt.query, nil)

			handler.ListLookups(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var body []models.Lookup
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, lookups, body)
			}

			if tt.callsRepo {
				mockRepo.AssertExpectations(t)
			}
		})
	}
}

func TestLookupHandler_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewLookupHandler(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/lookups", nil)

	handler.ListLookups(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"lookup journal disabled"}`, w.Body.String())
}
