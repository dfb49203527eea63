package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

const otpDigits = 6

// GenerateOTPCode returns a zero-padded 6-digit code from crypto/rand.
func GenerateOTPCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n), nil
}

// HashOTPCode binds a code to its mobile number so a code issued for one
// number can never verify against another.
func HashOTPCode(mobile, code string) string {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(NormalizeMobile(mobile) + ":" + strings.TrimSpace(code)))
	return hex.EncodeToString(h.Sum(nil))
}

// NormalizeMobile strips spaces and dashes and defaults bare 10-digit Indian
// numbers to +91.
func NormalizeMobile(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	if len(cleaned) == 10 {
		return "+91" + cleaned
	}
	return cleaned
}
