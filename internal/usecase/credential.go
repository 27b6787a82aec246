package usecase

import (
	"crypto/sha256"
	"crypto/subtle"
)

// SharedSecret compares against one configured password in constant time.
// Both sides are hashed first so the comparison does not leak the length.
type SharedSecret struct {
	digest  [sha256.Size]byte
	enabled bool
}

func NewSharedSecret(secret string) *SharedSecret {
	if secret == "" {
		return &SharedSecret{}
	}
	return &SharedSecret{digest: sha256.Sum256([]byte(secret)), enabled: true}
}

func (s *SharedSecret) Enabled() bool {
	return s.enabled
}

func (s *SharedSecret) Check(secret string) bool {
	if !s.enabled {
		return false
	}
	presented := sha256.Sum256([]byte(secret))
	return subtle.ConstantTimeCompare(presented[:], s.digest[:]) == 1
}
