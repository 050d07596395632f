package utils

import "golang.org/x/crypto/bcrypt"

// AdminSecret is the bcrypt digest of the shared staff password. The
// plaintext read from the environment is hashed once at startup and
// discarded; login requests compare against the digest only.
type AdminSecret struct {
	hash []byte
}

// NewAdminSecret hashes plain at the given bcrypt cost.
func NewAdminSecret(plain string, cost int) (AdminSecret, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return AdminSecret{}, err
	}
	return AdminSecret{hash: b}, nil
}

// Match reports whether plain is the staff password. A zero-value
// secret never matches.
func (s AdminSecret) Match(plain string) bool {
	return bcrypt.CompareHashAndPassword(s.hash, []byte(plain)) == nil
}
