// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	data := `{"stream":"alerts","priority":"danger"}`

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write([]byte(data))
	expected := hex.EncodeToString(h.Sum(nil))

	if got := HashString(data, testHashKey); got != expected {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", expected, got)
	}
}

func TestHashString_KeyMatters(t *testing.T) {
	if HashString("data", "k1") == HashString("data", "k2") {
		t.Fatal("different keys must produce different signatures")
	}
}
