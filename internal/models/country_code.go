package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCountryCode is returned when a value is not an ISO 3166-1 alpha-2 code.
var ErrInvalidCountryCode = errors.New("invalid country code")

// CountryCode is an upper-case ISO 3166-1 alpha-2 code such as "US".
type CountryCode string

// ParseCountryCode normalizes s to upper case and checks it is exactly two ASCII letters.
func ParseCountryCode(s string) (CountryCode, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	if len(code) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountryCode, s)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return "", fmt.Errorf("%w: %q", ErrInvalidCountryCode, s)
		}
	}
	return CountryCode(code), nil
}

func (c CountryCode) String() string {
	return string(c)
}
