// internal/app/system/secrets/secrets.go

// Package secrets hashes and verifies the shared-secret passwords that
// gate entity mutations. Clients send plaintext secrets exactly as
// before; only the at-rest representation is hashed.
package secrets

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash of a plaintext secret.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored hash.
func Verify(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
