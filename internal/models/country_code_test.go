package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCountryCode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    CountryCode
		expectError bool
	}{
		{name: "lower case is normalized", input: "us", expected: "US"},
		{name: "upper case", input: "DE", expected: "DE"},
		{name: "surrounding whitespace", input: " jp ", expected: "JP"},
		{name: "empty", input: "", expectError: true},
		{name: "one letter", input: "u", expectError: true},
		{name: "three letters", input: "usa", expectError: true},
		{name: "digits", input: "1a", expectError: true},
		{name: "non ascii", input: "é", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := ParseCountryCode(tt.input)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidCountryCode)
				assert.Empty(t, code)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, code)
			}
		})
	}
}
