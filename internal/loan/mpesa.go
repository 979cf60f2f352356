package loan

import (
	"errors"
	"strings"
)

// Fixed payment channel. The applicant pays the service fee out of band
// via Lipa na M-Pesa and reports the confirmation code; the code is only
// format-checked here, staff verify the actual transaction later.
const (
	TillNumber    = "8456602"
	ServiceFeeKSh = 150
)

var (
	ErrMpesaCodeTooShort = errors.New("M-Pesa code must be at least 10 characters.")
	ErrMpesaCodeTooLong  = errors.New("M-Pesa code must be less than 20 characters.")
)

// ValidateMpesaCode trims and format-checks a transaction reference code.
func ValidateMpesaCode(code string) (string, error) {
	code = strings.TrimSpace(code)

	if len(code) < 10 {
		return "", ErrMpesaCodeTooShort
	}

	if len(code) > 20 {
		return "", ErrMpesaCodeTooLong
	}

	return code, nil
}
