package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded. The delivery adapter uses it to sign payloads.
//
// Example usage:
//
//	signature := utils.HashString(string(payload), deviceSecret)
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashBytes([]byte(data), hashKey))
}

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
