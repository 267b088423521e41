package utils

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const accountNumberLength = 10

var (
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	pinPattern    = regexp.MustCompile(`^\d{4}$`)
)

// GenerateAccountNumber generates a random 10-digit account number in
// [10^9, 10^10-1]. Uniqueness against the ledger is the caller's concern.
func GenerateAccountNumber() (int64, error) {
	digits := make([]byte, accountNumberLength)
	_, err := rand.Read(digits)
	if err != nil {
		return 0, fmt.Errorf("failed to generate random digits: %w", err)
	}

	// First digit 1-9 so the number always has exactly 10 digits.
	var builder strings.Builder
	builder.WriteByte(digits[0]%9 + '1')
	for _, b := range digits[1:] {
		builder.WriteByte(b%10 + '0')
	}

	number, err := strconv.ParseInt(builder.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse generated account number: %w", err)
	}
	return number, nil
}

// ValidateMobile reports whether mobile is 10 digits starting with 6-9.
func ValidateMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

// ValidatePIN reports whether pin is exactly 4 digits.
func ValidatePIN(pin string) bool {
	return pinPattern.MatchString(pin)
}
