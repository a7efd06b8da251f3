package service

import "errors"

var (
	// ErrResolutionFailed means the coordinate could not be turned into a country code.
	ErrResolutionFailed = errors.New("resolution failed")
	// ErrNoCountryCode means the reverse geocoder answered without a usable country code.
	ErrNoCountryCode = errors.New("no country code at coordinate")
	// ErrFetchFailed means the country record could not be fetched.
	ErrFetchFailed = errors.New("fetch failed")
	// ErrRenderFailed means the popup or panel could not be rendered for a fetched record.
	ErrRenderFailed = errors.New("render failed")
)
