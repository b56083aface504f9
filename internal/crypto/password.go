// Package crypto implements password hashing for the authentication flow.
//
// Hashes are stored in the composite format "hex(derivedKey).hexSalt": a
// 32-byte scrypt-derived key and the 16-byte random salt that produced it,
// both hex-encoded and joined with a dot. The salt is not a secret; keeping
// it next to the key lets verification re-derive the hash without any
// additional lookup.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. These are the library defaults (interactive login
// profile) and must stay fixed: changing them invalidates every stored hash.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32

	saltLength = 16
)

// ErrMalformedHash is returned by VerifyPassword when the stored value does
// not follow the "hex(derivedKey).hexSalt" composite format.
var ErrMalformedHash = errors.New("malformed password hash")

// passwordHasher is the scrypt-backed implementation of [PasswordHasher].
type passwordHasher struct{}

// NewPasswordHasher constructs a [PasswordHasher] using scrypt key
// derivation. The returned value is stateless and safe for concurrent use.
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{}
}

// HashPassword implements [PasswordHasher]. It reads 16 random bytes from
// the OS CSPRNG, hex-encodes them, and derives a 32-byte key from the
// password and the hex salt string. The result is returned as
// "hex(derivedKey).hexSalt".
func (h *passwordHasher) HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}
	hexSalt := hex.EncodeToString(salt)

	key, err := deriveKey(password, hexSalt)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(key) + "." + hexSalt, nil
}

// VerifyPassword implements [PasswordHasher]. It splits storedHash on ".",
// re-derives the key with the extracted salt, and compares the result
// byte-for-byte in constant time to resist timing attacks.
func (h *passwordHasher) VerifyPassword(storedHash, password string) (bool, error) {
	hexKey, hexSalt, ok := strings.Cut(storedHash, ".")
	if !ok {
		return false, ErrMalformedHash
	}

	storedKey, err := hex.DecodeString(hexKey)
	if err != nil {
		return false, ErrMalformedHash
	}

	suppliedKey, err := deriveKey(password, hexSalt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(storedKey, suppliedKey) == 1, nil
}

// deriveKey runs scrypt over the password using the hex-encoded salt string
// as the salt input. The hex string itself (not its decoded bytes) is used,
// matching the stored-hash format produced at registration time.
func deriveKey(password, hexSalt string) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), []byte(hexSalt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("error deriving password key: %w", err)
	}
	return key, nil
}
