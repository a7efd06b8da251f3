package service

import (
	"context"
	"fmt"

	"countrymap/internal/models"
)

// CountryService fetches country metadata for a resolved code
type CountryService struct {
	client CountryClient
}

// CountryClient interface for dependency injection
type CountryClient interface {
	GetCountryByCode(ctx context.Context, code models.CountryCode) (*models.CountryRecord, error)
}

// NewCountryService creates a new country service
func NewCountryService(client CountryClient) *CountryService {
	return &CountryService{client: client}
}

// FetchCountry returns the country record for code. Nothing is cached; every
// call goes upstream. Every failure wraps ErrFetchFailed.
func (s *CountryService) FetchCountry(ctx context.Context, code models.CountryCode) (*models.CountryRecord, error) {
	parsed, err := models.ParseCountryCode(code.String())
	if err != nil {
		return nil, fmt.Errorf("service: %w: %w", ErrFetchFailed, err)
	}
	if parsed != code {
		return nil, fmt.Errorf("service: %w: %w: %q is not upper case", ErrFetchFailed, models.ErrInvalidCountryCode, code)
	}

	record, err := s.client.GetCountryByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("service: %w: %w", ErrFetchFailed, err)
	}
	if record == nil {
		return nil, fmt.Errorf("service: %w: empty record for %s", ErrFetchFailed, code)
	}

	return record, nil
}
