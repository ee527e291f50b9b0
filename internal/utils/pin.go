package utils

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Operator PINs are short numeric codes typed on the terminal keypad.
const (
	MinPINLength = 4
	MaxPINLength = 12
)

// ValidPIN reports whether pin is all digits and within the allowed length.
func ValidPIN(pin string) bool {
	if len(pin) < MinPINLength || len(pin) > MaxPINLength {
		return false
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) || r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// HashPIN returns the bcrypt hash stored in OPERATOR_PIN_HASH.
func HashPIN(pin string) (string, error) {
	if !ValidPIN(pin) {
		return "", fmt.Errorf("PIN must be %d to %d digits", MinPINLength, MaxPINLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hash), nil
}

// CheckPIN compares a typed PIN with the configured bcrypt hash.
func CheckPIN(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}
