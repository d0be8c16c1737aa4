// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// MinSecretLength is the shortest secret the hasher accepts.
const MinSecretLength = 6

// CredentialHasher turns a plaintext secret into a salted, one-way representation.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type CredentialHasher interface {
	// Hash returns a freshly salted hash of secret. Secrets shorter than
	// MinSecretLength fail with domainerrors.ErrSecretTooShort.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches the stored hash.
	Verify(secret, hash string) bool
}
