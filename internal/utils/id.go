package utils

import "crypto/rand"

// URL-safe alphabet, 64 symbols so a random byte maps uniformly.
const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// GenerateID creates a cryptographically secure random identifier of
// the given length, suitable for slugs and edit tokens.
func GenerateID(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i, v := range b {
		b[i] = idAlphabet[v&63]
	}
	return string(b), nil
}
