package service

import (
	"context"
	"fmt"

	"countrymap/internal/client"
	"countrymap/internal/models"
)

// ReverseGeoCodeService resolves a clicked coordinate to a country code
type ReverseGeoCodeService struct {
	client ReverseGeocoder
}

// ReverseGeocoder interface for dependency injection
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (*client.ReverseResult, error)
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(client ReverseGeocoder) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{client: client}
}

// ResolveCountryCode makes a single attempt to find the country at lat/lon.
// Coordinates are not range checked. Every failure wraps ErrResolutionFailed.
func (s *ReverseGeoCodeService) ResolveCountryCode(ctx context.Context, lat, lon float64) (models.CountryCode, error) {
	result, err := s.client.Reverse(ctx, lat, lon)
	if err != nil {
		return "", fmt.Errorf("service: %w: %w", ErrResolutionFailed, err)
	}

	switch {
	case result == nil:
		return "", fmt.Errorf("service: %w: %w", ErrResolutionFailed, ErrNoCountryCode)
	case result.Address == nil:
		return "", fmt.Errorf("service: %w: %w: %s", ErrResolutionFailed, ErrNoCountryCode, result.Error)
	case result.Address.CountryCode == "":
		return "", fmt.Errorf("service: %w: %w: %s", ErrResolutionFailed, ErrNoCountryCode, result.Address.Country)
	}

	code, err := models.ParseCountryCode(result.Address.CountryCode)
	if err != nil {
		return "", fmt.Errorf("service: %w: %w", ErrResolutionFailed, err)
	}

	return code, nil
}
