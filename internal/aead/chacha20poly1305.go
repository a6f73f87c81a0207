package aead

import "golang.org/x/crypto/chacha20poly1305"

// chaCha20Poly1305 is AEAD_CHACHA20_POLY1305 (AeadID 0x0003), wired to
// golang.org/x/crypto/chacha20poly1305 exactly as the teacher's
// internal/age/primitives.go aeadEncrypt/aeadDecrypt helpers use it.
type chaCha20Poly1305 struct{}

// ChaCha20Poly1305 is the shared Scheme value for AEAD_CHACHA20_POLY1305.
var ChaCha20Poly1305 Scheme = chaCha20Poly1305{}

func (chaCha20Poly1305) Name() string { return "ChaCha20Poly1305" }
func (chaCha20Poly1305) Nk() int      { return chacha20poly1305.KeySize }
func (chaCha20Poly1305) Nn() int      { return chacha20poly1305.NonceSize }
func (chaCha20Poly1305) Nt() int      { return chacha20poly1305.Overhead }

func (chaCha20Poly1305) Seal(key, nonce, aad, pt []byte) ([]byte, error) {
	a, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, ErrEncryption
	}
	if len(nonce) != a.NonceSize() {
		return nil, ErrEncryption
	}
	return a.Seal(nil, nonce, pt, aad), nil
}

func (chaCha20Poly1305) Open(key, nonce, aad, ct []byte) ([]byte, error) {
	a, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, ErrInvalidTag
	}
	if len(nonce) != a.NonceSize() {
		return nil, ErrInvalidTag
	}
	pt, err := a.Open(nil, nonce, ct, aad)
	if err != nil {
		return nil, ErrInvalidTag
	}
	return pt, nil
}
