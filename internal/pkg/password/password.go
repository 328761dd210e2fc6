// Package password hashes and checks shared secrets such as the admin key.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("secret hashing failed")
	ErrMismatch      = errors.New("secret does not match")
	ErrEmptySecret   = errors.New("empty secret")
)

const DefaultCost = bcrypt.DefaultCost

func Hash(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

func Compare(hashed, secret string) error {
	if hashed == "" || secret == "" {
		return ErrEmptySecret
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(secret)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
