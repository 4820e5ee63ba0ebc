// Package password hashes and verifies account passwords with bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor used for every stored hash.
const Cost = 10

// MaxBytes is the longest input bcrypt digests. Longer passwords are cut to
// this length by both Hash and Verify.
const MaxBytes = 72

// Hash returns a salted bcrypt digest of plaintext.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(clip(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches hash. A malformed hash is treated
// as a mismatch.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), clip(plaintext)) == nil
}

func clip(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > MaxBytes {
		b = b[:MaxBytes]
	}
	return b
}
