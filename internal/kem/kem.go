// Package kem implements the HPKE Key Encapsulation Mechanism layer
// (draft-irtf-cfrg-hpke-02 §6.1): turning a raw Diffie-Hellman exchange (or,
// for the bonus hybrid backend, a post-quantum encapsulation) into a
// shared-secret byte string plus a wire-format encapsulated key.
package kem

import "errors"

// ErrEncap is returned when shared-secret encapsulation fails.
var ErrEncap = errors.New("kem: encapsulation failed")

// ErrDecap is returned when shared-secret decapsulation fails.
var ErrDecap = errors.New("kem: decapsulation failed")

// PublicKey and PrivateKey are opaque handles a Scheme hands back from
// (de)serialization; the key schedule and caller-facing Suite type never
// need to know their concrete shape.
type PublicKey interface{ Bytes() []byte }
type PrivateKey interface{ Bytes() []byte }

// Scheme is a full KEM: either a DHKEM built from a kex.Scheme + kdf.Scheme
// (dhkem.go), or a direct encapsulation mechanism like the hybrid
// MLKEM768X25519 backend (hybrid.go) that has no inner Diffie-Hellman step
// at all. Both shapes produce the same (shared_secret, enc) pair the key
// schedule consumes, so the rest of this module never branches on which
// kind of Scheme it's holding.
type Scheme interface {
	Name() string

	PublicKeySize() int
	PrivateKeySize() int
	EncapsulationSize() int
	SecretSize() int

	GenerateKeyPair() (PrivateKey, PublicKey, error)
	DeserializePublicKey(raw []byte) (PublicKey, error)
	DeserializePrivateKey(raw []byte) (PrivateKey, error)

	Encapsulate(pkR PublicKey) (sharedSecret, enc []byte, err error)
	Decapsulate(enc []byte, skR PrivateKey) (sharedSecret []byte, err error)

	// AuthScheme is implemented only by KEMs that support the Auth and
	// AuthPsk modes; the hybrid backend does not (see DESIGN.md).
}

// AuthScheme is implemented by KEMs that support sender authentication.
type AuthScheme interface {
	Scheme
	AuthEncapsulate(pkR PublicKey, skS PrivateKey) (sharedSecret, enc []byte, err error)
	AuthDecapsulate(enc []byte, skR PrivateKey, pkS PublicKey) (sharedSecret []byte, err error)
}
