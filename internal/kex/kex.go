// Copyright 2019 The age Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kex defines the raw Diffie-Hellman key exchange capability that
// the HPKE DHKEM combinator is built on (draft-irtf-cfrg-hpke-02 §6.1).
//
// A Scheme never produces or consumes a shared secret by itself: it only
// does scalar multiplication and fixed-width (de)serialization. The KEM
// layer in internal/kem turns a Scheme's raw DH output into a labeled,
// KDF-extracted shared secret.
package kex

import "errors"

// ErrInvalidKeyExchange is returned by DH when the raw exchange result is
// the all-zero string, which both draft-02 and RFC 9180 require senders and
// recipients to reject.
var ErrInvalidKeyExchange = errors.New("kex: all-zero Diffie-Hellman result")

// ErrInvalidEncoding is returned by Deserialize{Public,Private}Key when the
// input is not exactly the scheme's fixed width.
var ErrInvalidEncoding = errors.New("kex: invalid key encoding length")

// PublicKey is an opaque, fixed-width Diffie-Hellman public value.
type PublicKey interface {
	// Bytes returns the scheme's serialized encoding of the key. For
	// Montgomery curves this is a pure byte copy of the u-coordinate; for
	// Weierstrass curves it's the uncompressed SEC1 point. Deserialization
	// is never clamped.
	Bytes() []byte
}

// PrivateKey is an opaque, fixed-width Diffie-Hellman scalar.
type PrivateKey interface {
	Bytes() []byte
}

// Scheme is a concrete Diffie-Hellman primitive: X25519 or P-256 in this
// module, but any curve can implement it without touching the KEM, key
// schedule, or AEAD context layers above it.
type Scheme interface {
	// Name identifies the scheme in KEM names and error messages; suite ids
	// are built from the registry ids, not from Name.
	Name() string

	PublicKeySize() int
	PrivateKeySize() int

	// GenerateKeyPair draws fresh randomness from rand for every call; the
	// caller supplies the CSPRNG so key generation never has an implicit
	// entropy source.
	GenerateKeyPair(rand interface {
		Read(p []byte) (int, error)
	}) (PrivateKey, PublicKey, error)

	// SkToPk is deterministic: the same sk always yields the same pk.
	SkToPk(sk PrivateKey) PublicKey

	// DH performs the raw scalar multiplication and returns
	// ErrInvalidKeyExchange iff the result is all-zero.
	DH(sk PrivateKey, pk PublicKey) ([]byte, error)

	DeserializePublicKey(raw []byte) (PublicKey, error)
	DeserializePrivateKey(raw []byte) (PrivateKey, error)
}
