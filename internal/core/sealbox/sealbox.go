// Package sealbox seals reflection bodies at rest with AES-256-GCM
// A sealed value is Prefix followed by base64(nonce || ciphertext). Values without the
// prefix are plaintext and pass through Open unchanged
package sealbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Prefix marks a sealed value
const Prefix = "enc:v1:"

// KeySize is the AES-256 key length
const KeySize = 32

var (
	// ErrNoKey is returned when a sealed value is opened without a key
	ErrNoKey = errors.New("sealbox: sealed value but no key configured")
	// ErrMalformed is returned for sealed values that cannot be decoded or authenticated
	ErrMalformed = errors.New("sealbox: malformed sealed value")
	// ErrKeySize is returned for keys that are not KeySize bytes
	ErrKeySize = errors.New("sealbox: key must be 32 bytes")
)

// randRead is a seam for tests
var randRead = rand.Read

// Box holds the AEAD, a nil *Box seals nothing and opens only plaintext
type Box struct {
	aead cipher.AEAD
}

// New builds a Box from a raw 32 byte key
func New(key []byte) (*Box, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Box{aead: aead}, nil
}

// DeriveKey stretches a passphrase into an AES key with argon2id
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// FromPassphrase derives the key and builds a Box
// an empty passphrase disables sealing and returns a nil Box
func FromPassphrase(passphrase, salt string) (*Box, error) {
	if strings.TrimSpace(passphrase) == "" {
		return nil, nil
	}
	return New(DeriveKey([]byte(passphrase), []byte(salt)))
}

// IsSealed reports whether s carries the ciphertext prefix
func IsSealed(s string) bool { return strings.HasPrefix(s, Prefix) }

// Enabled reports whether the box can seal
func (b *Box) Enabled() bool { return b != nil && b.aead != nil }

// Seal encrypts plain, a disabled box returns plain unchanged
func (b *Box) Seal(plain string) (string, error) {
	if !b.Enabled() {
		return plain, nil
	}
	nonce := make([]byte, b.aead.NonceSize())
	if _, err := randRead(nonce); err != nil {
		return "", err
	}
	out := b.aead.Seal(nonce, nonce, []byte(plain), nil)
	return Prefix + base64.StdEncoding.EncodeToString(out), nil
}

// Open decrypts a sealed value and passes plaintext through
func (b *Box) Open(s string) (string, error) {
	if !IsSealed(s) {
		return s, nil
	}
	if !b.Enabled() {
		return "", ErrNoKey
	}
	raw, err := base64.StdEncoding.DecodeString(s[len(Prefix):])
	if err != nil {
		return "", ErrMalformed
	}
	ns := b.aead.NonceSize()
	if len(raw) < ns+b.aead.Overhead() {
		return "", ErrMalformed
	}
	plain, err := b.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return "", ErrMalformed
	}
	return string(plain), nil
}
