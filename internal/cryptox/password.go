// Package cryptox hashes and verifies the login password.
//
// Two encodings are supported:
//
//	sha256    lowercase hex of SHA-256(password)
//	argon2id  argon2id$<salt-hex>$<key-hex>
//
// Verification always compares the encoded forms in constant time.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	AlgorithmSHA256   = "sha256"
	AlgorithmArgon2id = "argon2id"
)

// Hasher turns a password into its stored form and checks candidates against it.
type Hasher interface {
	Hash(password []byte) (string, error)
	Verify(password []byte, encoded string) bool
}

// NewHasher returns the Hasher registered under algorithm.
func NewHasher(algorithm string) (Hasher, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmSHA256:
		return SHA256Hasher{}, nil
	case AlgorithmArgon2id:
		return NewArgon2Hasher(), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", algorithm)
	}
}

// SHA256Hasher stores passwords as unsalted hex SHA-256 digests.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password []byte) (string, error) {
	sum := sha256.Sum256(password)
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(password []byte, encoded string) bool {
	candidate, _ := h.Hash(password)
	return constantTimeEqual(candidate, strings.ToLower(encoded))
}

// Argon2Hasher stores passwords as salted argon2id keys.
type Argon2Hasher struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// NewArgon2Hasher returns a hasher with the parameters used for new hashes.
func NewArgon2Hasher() Argon2Hasher {
	return Argon2Hasher{Time: 1, Memory: 64 * 1024, Threads: 4, KeyLen: 32, SaltLen: 16}
}

func (h Argon2Hasher) Hash(password []byte) (string, error) {
	salt := make([]byte, h.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return h.encode(password, salt), nil
}

func (h Argon2Hasher) Verify(password []byte, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 3 || parts[0] != AlgorithmArgon2id {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	return constantTimeEqual(h.encode(password, salt), encoded)
}

func (h Argon2Hasher) encode(password, salt []byte) string {
	key := argon2.IDKey(password, salt, h.Time, h.Memory, h.Threads, h.KeyLen)
	return AlgorithmArgon2id + "$" + hex.EncodeToString(salt) + "$" + hex.EncodeToString(key)
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
