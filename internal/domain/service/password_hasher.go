// Package service defines the interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

// PasswordHasher defines the interface for hashing and checking passwords.
// This abstracts the hashing algorithm away from the use cases.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
