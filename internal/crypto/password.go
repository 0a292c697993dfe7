package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters for password hashing
const (
	// ScryptN - CPU/memory cost parameter (must be a power of two)
	ScryptN = 32768
	// ScryptR - block size parameter
	ScryptR = 8
	// ScryptP - parallelization parameter
	ScryptP = 1
	// KeyLen - length of the derived key in bytes
	KeyLen = 32
	// SaltSize - size of the random salt in bytes
	SaltSize = 16
)

// HashPassword derives a salted scrypt hash from a plaintext password.
// The result is self-describing: scrypt$N$r$p$<salt base64>$<key base64>,
// so parameters can be raised later without invalidating stored hashes.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), salt, ScryptN, ScryptR, ScryptP, KeyLen)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return fmt.Sprintf("scrypt$%d$%d$%d$%s$%s",
		ScryptN, ScryptR, ScryptP,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword checks a plaintext password against an encoded hash.
// The comparison is constant-time. Any parse failure or mismatch returns
// an error; callers must not distinguish between the two.
func VerifyPassword(password, encoded string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "scrypt" {
		return fmt.Errorf("malformed password hash")
	}

	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("malformed scrypt N parameter: %w", err)
	}
	r, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("malformed scrypt r parameter: %w", err)
	}
	p, err := strconv.Atoi(parts[3])
	if err != nil {
		return fmt.Errorf("malformed scrypt p parameter: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("failed to decode salt: %w", err)
	}
	want, err := base64.StdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("failed to decode key: %w", err)
	}

	got, err := scrypt.Key([]byte(password), salt, n, r, p, len(want))
	if err != nil {
		return fmt.Errorf("failed to derive key: %w", err)
	}

	if subtle.ConstantTimeCompare(got, want) != 1 {
		return fmt.Errorf("password mismatch")
	}

	return nil
}
