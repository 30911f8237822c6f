package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		countryCode string
		local       string
		expected    string
	}{
		{"leading zero stripped", "+32", "0492525183", "+32492525183"},
		{"no leading zero unchanged", "+32", "492525183", "+32492525183"},
		{"multiple leading zeros stripped", "+33", "00612345678", "+33612345678"},
		{"spaces removed", "+32", "0492 525 183", "+32492525183"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.countryCode, tt.local))
		})
	}
}
