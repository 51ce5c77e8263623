// Package common holds helpers for handling secrets.
package common

import (
	"crypto/rand"
	"encoding/hex"
)

// WipeByteArray zeroes b. Use it on passwords once they have been sent.
func WipeByteArray(b []byte) {
	clear(b)
}

// MakeRandHexString returns size random bytes, hex encoded.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
