package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type IdentityMode string

const (
	IdentityHash IdentityMode = "hash"
	IdentityRaw  IdentityMode = "raw"
)

func ParseIdentityMode(s string) IdentityMode {
	if strings.EqualFold(strings.TrimSpace(s), string(IdentityRaw)) {
		return IdentityRaw
	}
	return IdentityHash
}

// ValidateEmail checks the local@domain.tld shape. The pattern only admits
// ASCII, so anything else is rejected here.
func ValidateEmail(email string) *ValidationError {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return &ValidationError{"email", "is required"}
	}
	if !emailPattern.MatchString(trimmed) {
		return &ValidationError{"email", "is invalid"}
	}
	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailIdentity returns the stored form of a normalized address.
func EmailIdentity(normalized string, mode IdentityMode) string {
	if mode == IdentityRaw {
		return normalized
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
