// Copyright 2019 The age Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kex

import (
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
)

// basepoint is the canonical Curve25519 generator, kept as a package value
// (rather than recomputed) and passed to curve25519.X25519 for key
// generation and SkToPk.
var basepoint = []byte{
	0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

type x25519PublicKey struct{ b [32]byte }
type x25519PrivateKey struct{ b [32]byte }

func (k x25519PublicKey) Bytes() []byte  { return append([]byte(nil), k.b[:]...) }
func (k x25519PrivateKey) Bytes() []byte { return append([]byte(nil), k.b[:]...) }

// X25519 implements Scheme over Curve25519, as draft-irtf-cfrg-hpke-02's
// DHKEM(X25519, HKDF-SHA256) requires. It wraps golang.org/x/crypto/curve25519
// the same way the teacher's internal/curve25519 package does: a pure byte
// copy in and out, with an explicit all-zero check on the DH result, and no
// scalar clamping performed anywhere but inside curve25519.X25519 itself.
type X25519 struct{}

func (X25519) Name() string          { return "X25519" }
func (X25519) PublicKeySize() int    { return 32 }
func (X25519) PrivateKeySize() int   { return 32 }

func (X25519) GenerateKeyPair(rand interface {
	Read(p []byte) (int, error)
}) (PrivateKey, PublicKey, error) {
	var sk x25519PrivateKey
	if _, err := io.ReadFull(rand, sk.b[:]); err != nil {
		return nil, nil, fmt.Errorf("kex: x25519: %w", err)
	}
	pub, err := curve25519.X25519(sk.b[:], basepoint)
	if err != nil {
		return nil, nil, fmt.Errorf("kex: x25519: %w", err)
	}
	var pk x25519PublicKey
	copy(pk.b[:], pub)
	return sk, pk, nil
}

func (X25519) SkToPk(sk PrivateKey) PublicKey {
	s := sk.(x25519PrivateKey)
	pub, err := curve25519.X25519(s.b[:], basepoint)
	if err != nil {
		// Only fails on malformed scalar length, impossible for a fixed [32]byte.
		panic("kex: x25519: " + err.Error())
	}
	var pk x25519PublicKey
	copy(pk.b[:], pub)
	return pk
}

func (X25519) DH(sk PrivateKey, pk PublicKey) ([]byte, error) {
	s := sk.(x25519PrivateKey)
	p := pk.(x25519PublicKey)
	out, err := curve25519.X25519(s.b[:], p.b[:])
	if err != nil {
		// curve25519.X25519 itself rejects known low-order input points
		// (the all-zero point among them), which is exactly the condition
		// draft-02 and RFC 9180 require DH to reject.
		return nil, ErrInvalidKeyExchange
	}
	var zero [32]byte
	if subtle.ConstantTimeCompare(out, zero[:]) == 1 {
		return nil, ErrInvalidKeyExchange
	}
	return out, nil
}

func (X25519) DeserializePublicKey(raw []byte) (PublicKey, error) {
	if len(raw) != 32 {
		return nil, ErrInvalidEncoding
	}
	var pk x25519PublicKey
	copy(pk.b[:], raw)
	return pk, nil
}

func (X25519) DeserializePrivateKey(raw []byte) (PrivateKey, error) {
	if len(raw) != 32 {
		return nil, ErrInvalidEncoding
	}
	var sk x25519PrivateKey
	copy(sk.b[:], raw)
	return sk, nil
}
