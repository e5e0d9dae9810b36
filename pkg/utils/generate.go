package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

// ConfirmationCodeDigits is the number of digit draws in a confirmation code.
const ConfirmationCodeDigits = 6

var digitUpperBound = big.NewInt(10)

// GenerateConfirmationCode concatenates six independent 0-9 draws into an
// integer. Leading zero draws shorten the integer, so the result lies in
// [0, 999999].
func GenerateConfirmationCode() int {
	code := 0
	for i := 0; i < ConfirmationCodeDigits; i++ {
		code = code*10 + randomDigit()
	}
	return code
}

// FormatConfirmationCode renders a code zero-padded to its full width.
func FormatConfirmationCode(code int) string {
	return fmt.Sprintf("%0*d", ConfirmationCodeDigits, code)
}

// ParseConfirmationCode accepts codes with or without leading zeros.
func ParseConfirmationCode(raw string) (int, error) {
	if raw == "" || len(raw) > ConfirmationCodeDigits {
		return 0, fmt.Errorf("invalid confirmation code")
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid confirmation code")
		}
	}
	return strconv.Atoi(raw)
}

func randomDigit() int {
	n, err := rand.Int(rand.Reader, digitUpperBound)
	if err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return int(n.Int64())
}
