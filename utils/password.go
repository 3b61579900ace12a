// Package utils holds small helpers shared across services.
package utils

import "github.com/matthewhartstonge/argon2"

// HashPassword encodes the password with argon2id using the library defaults.
func HashPassword(password string) (string, error) {
	config := argon2.DefaultConfig()
	encoded, err := config.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether password matches the encoded argon2 hash.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
