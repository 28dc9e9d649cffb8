// Package password is the credential store: adaptive salted hashing with
// bcrypt. Digests are opaque; verification never reports why it failed.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Check returns false on any mismatch or malformed digest.
func Check(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
