package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// aesGCM is AES-GCM with a 128- or 256-bit key (AeadID 0x0001/0x0002). Built
// entirely on stdlib crypto/aes and crypto/cipher: no ecosystem package in
// this module's dependency pack offers an AES-GCM alternative worth
// preferring over the standard library's constant-time, hardware-accelerated
// implementation (see DESIGN.md).
type aesGCM struct {
	name   string
	keyLen int
}

// AesGcm128 is AEAD_AES_128_GCM.
var AesGcm128 Scheme = aesGCM{name: "AES-128-GCM", keyLen: 16}

// AesGcm256 is AEAD_AES_256_GCM.
var AesGcm256 Scheme = aesGCM{name: "AES-256-GCM", keyLen: 32}

func (a aesGCM) Name() string { return a.name }
func (a aesGCM) Nk() int      { return a.keyLen }
func (aesGCM) Nn() int        { return 12 }
func (aesGCM) Nt() int        { return 16 }

func (a aesGCM) gcm(key []byte) (cipher.AEAD, error) {
	if len(key) != a.keyLen {
		return nil, fmt.Errorf("aead: %s: bad key length %d", a.name, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("aead: %s: %w", a.name, err)
	}
	return cipher.NewGCM(block)
}

func (a aesGCM) Seal(key, nonce, aad, pt []byte) ([]byte, error) {
	gcm, err := a.gcm(key)
	if err != nil {
		return nil, ErrEncryption
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrEncryption
	}
	return gcm.Seal(nil, nonce, pt, aad), nil
}

func (a aesGCM) Open(key, nonce, aad, ct []byte) ([]byte, error) {
	gcm, err := a.gcm(key)
	if err != nil {
		return nil, ErrInvalidTag
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrInvalidTag
	}
	pt, err := gcm.Open(nil, nonce, ct, aad)
	if err != nil {
		return nil, ErrInvalidTag
	}
	return pt, nil
}
