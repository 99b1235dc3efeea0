// Package hasher turns plaintext passwords into stored digests.
package hasher

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Supported hasher kinds.
const (
	KindSHA256 = "sha256"
	KindBcrypt = "bcrypt"
)

// bcryptMaxBytes is the longest input bcrypt accepts.
const bcryptMaxBytes = 72

var (
	// ErrMismatch is returned when a plaintext does not match a digest.
	ErrMismatch = errors.New("password does not match digest")

	// ErrTooLong is returned when a plaintext exceeds what the hasher accepts.
	ErrTooLong = errors.New("password too long")
)

// Hasher hashes passwords and compares them with stored digests.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Compare(digest, plaintext string) error
}

// New returns the hasher for kind.
func New(kind string) (Hasher, error) {
	switch kind {
	case KindSHA256:
		return SHA256{}, nil
	case KindBcrypt:
		return Bcrypt{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("hasher: unknown kind %q", kind)
	}
}

// SHA256 is the legacy digest: hex(SHA-256(plaintext)), deterministic and unsalted.
type SHA256 struct{}

func (SHA256) Hash(plaintext string) (string, error) {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256) Compare(digest, plaintext string) error {
	candidate, _ := h.Hash(plaintext)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(digest)) != 1 {
		return ErrMismatch
	}
	return nil
}

// Bcrypt stores salted bcrypt digests.
type Bcrypt struct {
	Cost int
}

func (b Bcrypt) Hash(plaintext string) (string, error) {
	if len(plaintext) > bcryptMaxBytes {
		return "", fmt.Errorf("hasher: bcrypt: %w (max %d bytes)", ErrTooLong, bcryptMaxBytes)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.Cost)
	if err != nil {
		return "", fmt.Errorf("hasher: bcrypt: %w", err)
	}
	return string(digest), nil
}

func (Bcrypt) Compare(digest, plaintext string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)); err != nil {
		return ErrMismatch
	}
	return nil
}
