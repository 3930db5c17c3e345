package snapshot

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Optional passphrase protection for export files. A sealed export is the
// magic header followed by base64(salt || nonce || AES-256-GCM ciphertext)
// of the plain JSON document.

const (
	sealedHeader = "TLENC1:"

	keySize          = 32 // AES-256
	nonceSize        = 12 // GCM standard nonce size
	saltSize         = 16
	pbkdf2Iterations = 100000
)

// IsSealed reports whether data is a passphrase-protected export.
func IsSealed(data []byte) bool {
	return strings.HasPrefix(string(data), sealedHeader)
}

// Seal encrypts a plain export document with a passphrase-derived key.
func Seal(plain []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Envelope layout: salt || nonce || ciphertext.
	payload := append(salt, gcm.Seal(nonce, nonce, plain, nil)...)
	return []byte(sealedHeader + base64.StdEncoding.EncodeToString(payload)), nil
}

// Open decrypts a sealed export. A wrong passphrase or corrupted payload
// fails without revealing which.
func Open(sealed []byte, passphrase string) ([]byte, error) {
	raw := strings.TrimPrefix(string(sealed), sealedHeader)
	if raw == string(sealed) {
		return nil, errors.New("not a sealed export")
	}

	payload, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed sealed export: %w", err)
	}
	if len(payload) < saltSize+nonceSize {
		return nil, errors.New("sealed export too short")
	}

	salt := payload[:saltSize]
	nonce := payload[saltSize : saltSize+nonceSize]
	ciphertext := payload[saltSize+nonceSize:]

	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}

	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.New("decryption failed: wrong passphrase or corrupted data")
	}
	return plain, nil
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, pbkdf2Iterations, keySize, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
