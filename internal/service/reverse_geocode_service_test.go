package service

import (
	"context"
	"testing"

	"countrymap/internal/client"
	"countrymap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReverseGeocoder is a mock implementation of the ReverseGeocoder interface
type MockReverseGeocoder struct {
	mock.Mock
}

// Reverse implements ReverseGeocoder.
func (m *MockReverseGeocoder) Reverse(ctx context.Context, lat float64, lon float64) (*client.ReverseResult, error) {
	args := m.Called(ctx, lat, lon)
	return args.Get(0).(*client.ReverseResult), args.Error(1)
}

func TestReverseGeoCodeService_ResolveCountryCode(t *testing.T) {
	tests := []struct {
		name        string
		lat         float64
		lon         float64
		mockResult  *client.ReverseResult
		mockError   error
		expected    models.CountryCode
		expectedErr error
		errContains string
	}{
		{
			name:       "lower case code is normalized",
			lat:        48.8566,
			lon:        2.3522,
			mockResult: &client.ReverseResult{Address: &client.Address{Country: "France", CountryCode: "fr"}},
			expected:   "FR",
		},
		{
			name:       "out of range coordinates are forwarded unchanged",
			lat:        120.5,
			lon:        -200,
			mockResult: &client.ReverseResult{Address: &client.Address{CountryCode: "AQ"}},
			expected:   "AQ",
		},
		{
			name:        "missing address",
			lat:         0.5,
			lon:         -30,
			mockResult:  &client.ReverseResult{Error: "Unable to geocode"},
			expectedErr: ErrNoCountryCode,
			errContains: "Unable to geocode",
		},
		{
			name:        "missing country code",
			lat:         35.681236,
			lon:         139.767125,
			mockResult:  &client.ReverseResult{Address: &client.Address{Country: "Japan"}},
			expectedErr: ErrNoCountryCode,
			errContains: "Japan",
		},
		{
			name:        "malformed country code",
			lat:         35.681236,
			lon:         139.767125,
			mockResult:  &client.ReverseResult{Address: &client.Address{CountryCode: "jpn"}},
			expectedErr: models.ErrInvalidCountryCode,
		},
		{
			name:        "client error",
			lat:         35.681236,
			lon:         139.767125,
			mockResult:  nil,
			mockError:   assert.AnError,
			expectedErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockClient := new(MockReverseGeocoder)
			service := NewReverseGeoCodeService(mockClient)

			mockClient.On("Reverse", mock.Anything, tt.lat, tt.lon).Return(tt.mockResult, tt.mockError)

			// Execute
			result, err := service.ResolveCountryCode(context.Background(), tt.lat, tt.lon)

			// Assert
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, ErrResolutionFailed)
				assert.ErrorIs(t, err, tt.expectedErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				assert.Empty(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}

			mockClient.AssertExpectations(t)
		})
	}
}
