// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

package sec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/sellora/internal/platform/sec"
)

/*
TestCipher_Roundtrip verifies that decrypt(encrypt(P)) == P for a spread of inputs.
*/
func TestCipher_Roundtrip(t *testing.T) {
	cipher, err := sec.NewCipher("test-secret")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
	}{
		{"simple", "hunter2"},
		{"empty", ""},
		{"unicode", "pässwörd-日本語"},
		{"long", strings.Repeat("a", 257)},
		{"block_aligned", strings.Repeat("x", 32)},
		{"contains_separator", "left:right:edge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := cipher.Encrypt(tt.plaintext)
			require.NoError(t, err)

			decrypted, err := cipher.Decrypt(record)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, decrypted)
		})
	}
}

/*
TestCipher_RecordFormat verifies the "<ivHex>:<cipherHex>" storage format.
*/
func TestCipher_RecordFormat(t *testing.T) {
	cipher, err := sec.NewCipher("test-secret")
	require.NoError(t, err)

	record, err := cipher.Encrypt("hunter2")
	require.NoError(t, err)

	parts := strings.Split(record, ":")
	require.Len(t, parts, 2)

	// 16-byte IV hex encodes to 32 characters.
	assert.Len(t, parts[0], 32)
	// Ciphertext is a whole number of 16-byte blocks.
	assert.Equal(t, 0, len(parts[1])%32)
}

/*
TestCipher_IVFreshness verifies that encrypting the same plaintext twice yields
different records that both decrypt to the original.
*/
func TestCipher_IVFreshness(t *testing.T) {
	cipher, err := sec.NewCipher("test-secret")
	require.NoError(t, err)

	first, err := cipher.Encrypt("hunter2")
	require.NoError(t, err)
	second, err := cipher.Encrypt("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	decryptedFirst, err := cipher.Decrypt(first)
	require.NoError(t, err)
	decryptedSecond, err := cipher.Decrypt(second)
	require.NoError(t, err)

	assert.Equal(t, "hunter2", decryptedFirst)
	assert.Equal(t, "hunter2", decryptedSecond)
}

/*
TestCipher_Decrypt_Malformed verifies that corrupt records fail with ErrDecryption.
*/
func TestCipher_Decrypt_Malformed(t *testing.T) {
	cipher, err := sec.NewCipher("test-secret")
	require.NoError(t, err)

	tests := []struct {
		name   string
		record string
	}{
		{"garbage", "garbage"},
		{"missing_segment", "00112233445566778899aabbccddeeff"},
		{"too_many_segments", "aa:bb:cc"},
		{"invalid_iv_hex", "zz112233445566778899aabbccddeeff:00112233445566778899aabbccddeeff"},
		{"short_iv", "aabb:00112233445566778899aabbccddeeff"},
		{"invalid_cipher_hex", "00112233445566778899aabbccddeeff:not-hex"},
		{"empty_ciphertext", "00112233445566778899aabbccddeeff:"},
		{"partial_block", "00112233445566778899aabbccddeeff:aabb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cipher.Decrypt(tt.record)
			require.Error(t, err)
			assert.ErrorIs(t, err, sec.ErrDecryption)
		})
	}
}

/*
TestCipher_Decrypt_WrongSecret verifies that a secret-key mismatch fails
rather than returning mangled plaintext.

A CBC decrypt with the wrong key produces random bytes; the PKCS#7 padding
check rejects them with overwhelming probability.
*/
func TestCipher_Decrypt_WrongSecret(t *testing.T) {
	cipherA, err := sec.NewCipher("secret-a")
	require.NoError(t, err)
	cipherB, err := sec.NewCipher("secret-b")
	require.NoError(t, err)

	record, err := cipherA.Encrypt("hunter2")
	require.NoError(t, err)

	decrypted, err := cipherB.Decrypt(record)
	if err == nil {
		// Padding may coincidentally validate; the plaintext must still differ.
		assert.NotEqual(t, "hunter2", decrypted)
	} else {
		assert.ErrorIs(t, err, sec.ErrDecryption)
	}
}

/*
TestCipher_ComparePassword covers the login comparison truth table, including
the requirement that corrupt records never cause an error to escape.
*/
func TestCipher_ComparePassword(t *testing.T) {
	cipher, err := sec.NewCipher("test-secret")
	require.NoError(t, err)

	record, err := cipher.Encrypt("correct-horse")
	require.NoError(t, err)

	assert.True(t, cipher.ComparePassword("correct-horse", record))
	assert.False(t, cipher.ComparePassword("battery-staple", record))
	assert.False(t, cipher.ComparePassword("correct-horse", "garbage"))
	assert.False(t, cipher.ComparePassword("correct-horse", ""))
}

/*
TestNewCipher_EmptySecret verifies construction fails without a secret.
*/
func TestNewCipher_EmptySecret(t *testing.T) {
	_, err := sec.NewCipher("")
	assert.Error(t, err)
}
