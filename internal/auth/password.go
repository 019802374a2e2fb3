package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a plaintext password with a per-call random salt.
// Two hashes of the same password never match byte-for-byte.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored digest.
// A malformed digest fails closed: the answer is false, never a panic.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
