package kem

import (
	"errors"
	"fmt"

	circlkem "github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/hybrid"
)

// ErrAuthUnsupported names the case of a KEM backend with no
// sender-authentication mode, such as the hybrid MLKEM768X25519 backend
// below, which does not implement AuthScheme at all. No function in this
// package returns it; the root package reports the case with its own
// ErrAuthUnsupported.
var ErrAuthUnsupported = errors.New("kem: this scheme has no Auth/AuthPsk mode")

// hybridPublicKey and hybridPrivateKey adapt circl's kem.PublicKey/
// kem.PrivateKey to this package's narrower PublicKey/PrivateKey handles.
type hybridPublicKey struct{ k circlkem.PublicKey }
type hybridPrivateKey struct{ k circlkem.PrivateKey }

func (k hybridPublicKey) Bytes() []byte {
	b, _ := k.k.MarshalBinary()
	return b
}

func (k hybridPrivateKey) Bytes() []byte {
	b, _ := k.k.MarshalBinary()
	return b
}

// hybridKEM wraps a circl kem.Scheme directly as a KEM backend: no
// Diffie-Hellman step, no labeled-extract/expand combinator, because
// circl's hybrid combiner has already done the classical/post-quantum
// mixing internally. Grounded on the teacher's own x25519Kyber768.go, which
// drives hybrid.Kyber768X25519() the same way: GenerateKeyPair/DeriveKeyPair,
// Encapsulate, Decapsulate, {Un}MarshalBinary{Public,Private}Key.
type hybridKEM struct {
	scheme circlkem.Scheme
}

// MLKEM768X25519 is the bonus hybrid KEM backend registered as KemID 0x2F01
// (see SPEC_FULL.md §3). It combines Kyber768 (the pre-standard round-3
// Kyber, via hybrid.Kyber768X25519) with X25519 through
// github.com/cloudflare/circl/kem/hybrid, giving the HPKE key schedule a
// post-quantum-secure shared secret while remaining classically secure if
// Kyber768 is ever broken.
var MLKEM768X25519 Scheme = &hybridKEM{scheme: hybrid.Kyber768X25519()}

func (h *hybridKEM) Name() string           { return h.scheme.Name() }
func (h *hybridKEM) PublicKeySize() int     { return h.scheme.PublicKeySize() }
func (h *hybridKEM) PrivateKeySize() int    { return h.scheme.PrivateKeySize() }
func (h *hybridKEM) EncapsulationSize() int { return h.scheme.CiphertextSize() }
func (h *hybridKEM) SecretSize() int        { return h.scheme.SharedKeySize() }

func (h *hybridKEM) GenerateKeyPair() (PrivateKey, PublicKey, error) {
	pk, sk, err := h.scheme.GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("kem: %s: %w", h.Name(), err)
	}
	return hybridPrivateKey{sk}, hybridPublicKey{pk}, nil
}

func (h *hybridKEM) DeserializePublicKey(raw []byte) (PublicKey, error) {
	pk, err := h.scheme.UnmarshalBinaryPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("kem: %s: %w", h.Name(), err)
	}
	return hybridPublicKey{pk}, nil
}

func (h *hybridKEM) DeserializePrivateKey(raw []byte) (PrivateKey, error) {
	sk, err := h.scheme.UnmarshalBinaryPrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("kem: %s: %w", h.Name(), err)
	}
	return hybridPrivateKey{sk}, nil
}

func (h *hybridKEM) Encapsulate(pkR PublicKey) (ss, enc []byte, err error) {
	pk := pkR.(hybridPublicKey).k
	enc, ss, err = h.scheme.Encapsulate(pk)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncap, err)
	}
	return ss, enc, nil
}

func (h *hybridKEM) Decapsulate(enc []byte, skR PrivateKey) ([]byte, error) {
	sk := skR.(hybridPrivateKey).k
	ss, err := h.scheme.Decapsulate(sk, enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecap, err)
	}
	return ss, nil
}

// GenerateHybridKeyPairFromSeed exposes circl's deterministic DeriveKeyPair,
// giving a reproducible hybrid keypair for seed without a CSPRNG.
func GenerateHybridKeyPairFromSeed(seed []byte) (PrivateKey, PublicKey) {
	pk, sk := hybrid.Kyber768X25519().DeriveKeyPair(seed)
	return hybridPrivateKey{sk}, hybridPublicKey{pk}
}
