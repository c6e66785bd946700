package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidatePhoneForms(t *testing.T) {
	tests := []struct {
		name          string
		msisdn        string
		expectedForms []string
		expectError   bool
	}{
		{
			name:          "International form expands to local form",
			msisdn:        "254712345678",
			expectedForms: []string{"254712345678", "0712345678"},
		},
		{
			name:          "Plus-prefixed international form",
			msisdn:        "+254712345678",
			expectedForms: []string{"254712345678", "0712345678"},
		},
		{
			name:          "Local form stays a single candidate",
			msisdn:        "0712345678",
			expectedForms: []string{"0712345678"},
		},
		{
			name:          "Separators are stripped",
			msisdn:        "254 712-345-678",
			expectedForms: []string{"254712345678", "0712345678"},
		},
		{
			name:        "Too short",
			msisdn:      "12345",
			expectError: true,
		},
		{
			name:        "Empty",
			msisdn:      "",
			expectError: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			forms, err := CandidatePhoneForms(tc.msisdn)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedForms, forms)
		})
	}
}

func TestNormalizeMSISDN(t *testing.T) {
	assert.Equal(t, "254712345678", NormalizeMSISDN("+254 712-345-678"))
	assert.Equal(t, "0712345678", NormalizeMSISDN("0712345678"))
}
