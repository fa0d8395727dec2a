// Copyright (c) 2026 Sellora. All rights reserved.
// Author: dev@sellora.app

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (credential encryption, JWT
// signing) from the domain logic. It acts as an Infrastructure service injected
// into the Application layer via small interfaces. All key material comes from
// the process configuration at construction time — never from package globals —
// so tests can inject distinct secrets per case.
package sec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// ErrDecryption reports a malformed or corrupt encrypted credential record.
//
// It is returned for a wrong segment count, invalid hex, a truncated
// ciphertext, or a bad padding block. It never escapes [Cipher.ComparePassword].
var ErrDecryption = errors.New("sec: cannot decrypt credential record")

// Key derivation parameters.
//
// The salt is intentionally static: the derivation must be deterministic so
// that records encrypted before a process restart remain decryptable. The
// cost parameters follow the scrypt recommendation for interactive use.
const (
	kdfSalt   = "sellora.credential.v1"
	kdfKeyLen = 32

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// recordSeparator splits the IV segment from the ciphertext segment.
const recordSeparator = ":"

// Cipher encrypts and compares credential records using AES-256-CBC.
//
// # Record Format
//
// Encrypted records are stored as "<ivHex>:<cipherHex>". A fresh random IV is
// generated for every encryption, so encrypting the same plaintext twice
// yields different records that both decrypt to the original.
type Cipher struct {
	key []byte
}

// NewCipher derives the AES key from the process-wide secret and returns a
// ready-to-use [Cipher].
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("sec: encryption secret must not be empty")
	}

	key, err := scrypt.Key([]byte(secret), []byte(kdfSalt), scryptN, scryptR, scryptP, kdfKeyLen)
	if err != nil {
		return nil, fmt.Errorf("sec: key derivation failed: %w", err)
	}

	return &Cipher{key: key}, nil
}

// Encrypt encrypts a plaintext credential into the storable record format.
//
// # Safety
//
// A fresh IV is drawn from crypto/rand on every call. An IV must never be
// reused with the same key, or identical plaintexts become linkable.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("sec: cipher init failed: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("sec: iv generation failed: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + recordSeparator + hex.EncodeToString(ciphertext), nil
}

// Decrypt reverses [Cipher.Encrypt].
//
// It fails with an error wrapping [ErrDecryption] when the record is
// malformed or when the recovered padding is invalid (corrupt record or
// secret-key mismatch).
func (c *Cipher) Decrypt(record string) (string, error) {
	parts := strings.Split(record, recordSeparator)
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: wrong segment count", ErrDecryption)
	}

	iv, err := hex.DecodeString(parts[0])
	if err != nil || len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: invalid iv segment", ErrDecryption)
	}

	ciphertext, err := hex.DecodeString(parts[1])
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: invalid ciphertext segment", ErrDecryption)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("sec: cipher init failed: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	return string(unpadded), nil
}

// ComparePassword decrypts the stored record and compares it with the
// candidate in constant time.
//
// Any decryption failure is swallowed and reported as false: a login attempt
// against a corrupt record must be indistinguishable from a wrong password.
func (c *Cipher) ComparePassword(candidate, record string) bool {
	plaintext, err := c.Decrypt(record)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(plaintext), []byte(candidate)) == 1
}

// # PKCS#7 Padding

// pkcs7Pad pads data to a multiple of blockSize.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padding := make([]byte, padLen)
	for i := range padding {
		padding[i] = byte(padLen)
	}
	return append(data, padding...)
}

// pkcs7Unpad strips and verifies PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, errors.New("invalid padding length")
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errors.New("inconsistent padding bytes")
		}
	}

	return data[:len(data)-padLen], nil
}
