// Package aead defines the stateless authenticated-encryption capability
// consumed by the HPKE encryption context (draft-irtf-cfrg-hpke-02 §6.3).
//
// Scheme implementations never see a sequence number or a base nonce: the
// context in the root hpke package derives the per-message nonce and hands
// it here along with a caller-owned buffer.
package aead

import "errors"

// ErrEncryption is returned by Seal on an unspecified failure (should not
// occur for well-formed inputs, but the AEAD interface can fail, e.g. on a
// nonce of the wrong length).
var ErrEncryption = errors.New("aead: seal failed")

// ErrInvalidTag is returned by Open when the authentication tag does not
// verify.
var ErrInvalidTag = errors.New("aead: message authentication failed")

// Scheme is a concrete AEAD algorithm.
type Scheme interface {
	Name() string
	// Nk is the key size in bytes.
	Nk() int
	// Nn is the nonce size in bytes.
	Nn() int
	// Nt is the authentication tag size in bytes.
	Nt() int

	// Seal encrypts pt and returns ciphertext with the tag appended, the
	// idiomatic Go AEAD convention (stdlib cipher.AEAD and
	// chacha20poly1305 both append to dst). SealDetached/OpenDetached in
	// the root package split the tag back out for callers that need the
	// bit-exact wire layout spec.md describes.
	Seal(key, nonce, aad, pt []byte) (ct []byte, err error)
	Open(key, nonce, aad, ct []byte) (pt []byte, err error)
}
