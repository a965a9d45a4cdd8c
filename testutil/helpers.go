package testutil

import (
	"crypto/rand"
	"encoding/hex"
)

func RandomString(length int) string {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}

	return hex.EncodeToString(bytes)[:length]
}

func RandomToken() string {
	const tokenLength = 32

	return RandomString(tokenLength)
}
