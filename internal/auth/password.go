package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 8
	// PasswordSymbols is the fixed set a password must draw at least one symbol from.
	PasswordSymbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// PasswordViolations returns one message per policy clause the password breaks.
func PasswordViolations(password string) []string {
	var (
		hasDigit, hasUpper, hasLower, hasSymbol bool
		violations                              []string
	)

	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		}
	}

	if len([]rune(password)) < MinPasswordLength {
		violations = append(violations, "Password must be at least 8 characters long")
	}
	if !hasDigit {
		violations = append(violations, "Password must contain at least one number")
	}
	if !hasUpper {
		violations = append(violations, "Password must contain at least one uppercase letter")
	}
	if !hasLower {
		violations = append(violations, "Password must contain at least one lowercase letter")
	}
	if !hasSymbol {
		violations = append(violations, "Password must contain at least one special character ("+PasswordSymbols+")")
	}
	return violations
}
