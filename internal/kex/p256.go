package kex

import (
	"crypto/ecdh"
	"crypto/subtle"
	"fmt"
)

type ecdhPublicKey struct{ k *ecdh.PublicKey }
type ecdhPrivateKey struct{ k *ecdh.PrivateKey }

func (k ecdhPublicKey) Bytes() []byte  { return k.k.Bytes() }
func (k ecdhPrivateKey) Bytes() []byte { return k.k.Bytes() }

// P256 implements Scheme over the NIST P-256 curve, for
// DHKEM(P-256, HKDF-SHA256). It is built on stdlib crypto/ecdh, the way
// DataDog/go-secure-sdk's crypto/kem.dhkem type wraps any ecdh.Curve: raw
// uncompressed SEC1 points in and out, and errors from ECDH surfaced
// directly since crypto/ecdh already rejects degenerate shared points.
type P256 struct{}

func (P256) Name() string        { return "P-256" }
func (P256) PublicKeySize() int  { return 65 }
func (P256) PrivateKeySize() int { return 32 }

func (P256) GenerateKeyPair(rand interface {
	Read(p []byte) (int, error)
}) (PrivateKey, PublicKey, error) {
	sk, err := ecdh.P256().GenerateKey(rand)
	if err != nil {
		return nil, nil, fmt.Errorf("kex: p256: %w", err)
	}
	return ecdhPrivateKey{sk}, ecdhPublicKey{sk.PublicKey()}, nil
}

func (P256) SkToPk(sk PrivateKey) PublicKey {
	s := sk.(ecdhPrivateKey)
	return ecdhPublicKey{s.k.PublicKey()}
}

func (P256) DH(sk PrivateKey, pk PublicKey) ([]byte, error) {
	s := sk.(ecdhPrivateKey)
	p := pk.(ecdhPublicKey)
	out, err := s.k.ECDH(p.k)
	if err != nil {
		return nil, fmt.Errorf("kex: p256: %w", err)
	}
	zero := make([]byte, len(out))
	if subtle.ConstantTimeCompare(out, zero) == 1 {
		return nil, ErrInvalidKeyExchange
	}
	return out, nil
}

func (P256) DeserializePublicKey(raw []byte) (PublicKey, error) {
	if len(raw) != 65 {
		return nil, ErrInvalidEncoding
	}
	pk, err := ecdh.P256().NewPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return ecdhPublicKey{pk}, nil
}

func (P256) DeserializePrivateKey(raw []byte) (PrivateKey, error) {
	if len(raw) != 32 {
		return nil, ErrInvalidEncoding
	}
	sk, err := ecdh.P256().NewPrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return ecdhPrivateKey{sk}, nil
}
