package crypto

// PasswordHasher defines the contract for password hashing and verification.
// The auth service depends on this interface so it can be tested with a fake
// that does not pay the key-derivation cost.
type PasswordHasher interface {
	// HashPassword derives a storable composite hash from the plaintext
	// password. A fresh random salt is generated on every call, so hashing
	// the same password twice yields two different results.
	HashPassword(password string) (string, error)

	// VerifyPassword re-derives the hash from the supplied password and the
	// salt embedded in storedHash and compares the two in constant time.
	// It returns true only when the password matches.
	VerifyPassword(storedHash, password string) (bool, error)
}
