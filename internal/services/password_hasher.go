package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher is the opaque hash provider consumed by the
// registration path. The engine never inspects the hash format.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type BcryptHasher struct{}

var _ PasswordHasher = (*BcryptHasher)(nil)

func (BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
