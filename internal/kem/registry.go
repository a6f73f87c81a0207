package kem

import (
	"github.com/hpke-go/hpke/internal/kdf"
	"github.com/hpke-go/hpke/internal/kex"
)

// Registry KemID values, per SPEC_FULL.md §3. X25519/P-256 match the
// draft-irtf-cfrg-hpke-02 registry; Mlkem768X25519 is namespaced outside it
// since draft-02 predates hybrid post-quantum KEMs.
const (
	X25519HkdfSha256 uint16 = 0x0020
	P256HkdfSha256    uint16 = 0x0010
	Mlkem768X25519    uint16 = 0x2F01
)

// Nsecret values from draft-irtf-cfrg-hpke-02 §7.1.
const (
	nSecretX25519 = 32
	nSecretP256   = 32
)

// ByID returns the KEM Scheme registered for id, or false if id names a
// ciphersuite this module doesn't implement.
func ByID(id uint16) (Scheme, bool) {
	switch id {
	case X25519HkdfSha256:
		return NewDHKEM(id, kex.X25519{}, kdf.HkdfSha256, nSecretX25519), true
	case P256HkdfSha256:
		return NewDHKEM(id, kex.P256{}, kdf.HkdfSha256, nSecretP256), true
	case Mlkem768X25519:
		return MLKEM768X25519, true
	default:
		return nil, false
	}
}
