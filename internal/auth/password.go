package auth

import "golang.org/x/crypto/bcrypt"

var bcryptCost = 14

// SetBcryptCost overrides the hashing cost factor. Values outside the
// range bcrypt accepts are ignored.
func SetBcryptCost(cost int) {
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		bcryptCost = cost
	}
}

// HashPassword hashes a given password using bcrypt. The salt is
// embedded in the returned digest.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPasswordHash compares a plain password with its hashed version.
// A malformed digest simply fails the comparison.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
