package session

import (
	"crypto/rand"
	"encoding/hex"
)

// tokenBytes gives 256 bits of entropy per token
const tokenBytes = 32

// NewToken generates an opaque session token
func NewToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
