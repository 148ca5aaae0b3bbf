package apikey

import (
	"crypto/rand"
	"encoding/hex"
)

// Generate returns a new 32-character hex API key.
func Generate() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
