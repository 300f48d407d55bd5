package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize   = 16
	iterations = 100000
	keySize    = 32
)

// Hash derives a storable credential from a plaintext password: a fresh
// random 16-byte salt followed by a PBKDF2-HMAC-SHA256 key.
func Hash(password string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("salt generation failed: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, keySize, sha256.New)
	return append(salt, key...), nil
}

// Verify reports whether password matches a value produced by Hash. The hash
// comparison is constant time.
func Verify(password string, stored []byte) bool {
	if len(stored) <= saltSize {
		return false
	}

	salt, expected := stored[:saltSize], stored[saltSize:]
	key := pbkdf2.Key([]byte(password), salt, iterations, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(key, expected) == 1
}
