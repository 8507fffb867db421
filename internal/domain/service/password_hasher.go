// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// Hashes are self-describing: the algorithm and its parameters are encoded in the string,
// so a hash can be verified without any other state.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// an unrecognized hash encoding is an error.
	Verify(hash, password string) (bool, error)

	// NeedsRehash reports whether hash was produced with an algorithm or parameters
	// weaker than the current target.
	NeedsRehash(hash string) bool

	// RecognizedPrefixes returns the prefixes of every hash encoding Verify understands.
	RecognizedPrefixes() []string
}
