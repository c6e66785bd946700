package utils

import (
	"fmt"
	"strings"
)

// NormalizeMSISDN strips separators and a leading plus from a
// provider-supplied phone number, leaving digits only.
func NormalizeMSISDN(msisdn string) string {
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")
	return stripped
}

// CandidatePhoneForms expands a provider-supplied MSISDN into the set
// of representations a stored profile may use: the provider's native
// form (e.g. 254712345678) and the local form built from the last nine
// digits with a leading zero (0712345678). Registration and the
// payment provider do not agree on a single format, so profile lookups
// match against both.
func CandidatePhoneForms(msisdn string) ([]string, error) {
	stripped := NormalizeMSISDN(msisdn)
	if len(stripped) < 9 {
		return nil, fmt.Errorf("MSISDN too short: %q", msisdn)
	}

	local := "0" + stripped[len(stripped)-9:]

	if local == stripped {
		return []string{stripped}, nil
	}
	return []string{stripped, local}, nil
}
