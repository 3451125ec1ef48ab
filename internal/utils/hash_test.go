// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	h := hmac.New(sha256.New, []byte("server-key"))
	h.Write([]byte("client-auth-hash"))
	want := hex.EncodeToString(h.Sum(nil))

	assert.Equal(t, want, HashString("client-auth-hash", "server-key"))
	assert.Equal(t, HashString("x", "k"), HashString("x", "k"), "deterministic")
	assert.NotEqual(t, HashString("x", "k1"), HashString("x", "k2"))
	assert.NotEqual(t, HashString("x", "k"), HashString("y", "k"))
}

func TestEqualHash(t *testing.T) {
	a := HashString("proof", "key")

	assert.True(t, EqualHash(a, HashString("proof", "key")))
	assert.False(t, EqualHash(a, HashString("proof2", "key")))
	assert.False(t, EqualHash(a, ""))
}
