package ports

// Hasher derives and verifies password hashes. The stored hash never leaves
// the store/hasher pair.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
