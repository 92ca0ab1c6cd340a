package utils

import (
	"unicode/utf8"

	"github.com/matthewhartstonge/argon2"

	"tourist-safety/apperrors"
)

const MinPasswordLength = 8

// CheckPasswordPolicy enforces the minimum length, counted in characters.
func CheckPasswordPolicy(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return apperrors.Validation("password", "Password must be at least 8 characters")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword treats a malformed stored hash as a mismatch.
func VerifyPassword(encodedHash, password string) bool {
	if encodedHash == "" {
		return false
	}
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	return err == nil && ok
}
