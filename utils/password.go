package utils

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2-SHA512 parameters. Changing them invalidates stored hashes.
const (
	pbkdf2Iterations = 350_000
	pbkdf2SaltLen    = 16
	pbkdf2KeyLen     = 32
)

// HashPassword derives a one-way hash of the plaintext with PBKDF2-SHA512
// under a fresh random salt. The result encodes the salt alongside the key.
func HashPassword(password string) (string, error) {
	salt := make([]byte, pbkdf2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword reports whether the plaintext matches a hash produced by
// HashPassword. Comparison is constant-time; a malformed hash never matches.
func VerifyPassword(hash, password string) bool {
	raw, err := hex.DecodeString(removeSeparator(hash))
	if err != nil || len(raw) != pbkdf2SaltLen+pbkdf2KeyLen {
		return false
	}
	salt, key := raw[:pbkdf2SaltLen], raw[pbkdf2SaltLen:]
	candidate := pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, pbkdf2KeyLen, sha512.New)
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

func removeSeparator(hash string) string {
	for i := 0; i < len(hash); i++ {
		if hash[i] == ':' {
			return hash[:i] + hash[i+1:]
		}
	}
	return hash
}
