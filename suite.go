// Package hpke implements the core of draft-irtf-cfrg-hpke-02 Hybrid Public
// Key Encryption: a KEM/KDF/AEAD ciphersuite, its four operating modes, and
// the encryption context they produce. See SPEC_FULL.md for the full design.
package hpke

import (
	"fmt"

	"github.com/hpke-go/hpke/internal/aead"
	"github.com/hpke-go/hpke/internal/kdf"
	"github.com/hpke-go/hpke/internal/kem"
)

// KemID, KdfID, and AeadID are the two-byte registry identifiers
// draft-irtf-cfrg-hpke-02 §7 assigns to each algorithm.
type KemID uint16
type KdfID uint16
type AeadID uint16

// KEM identifiers. KemX25519HkdfSha256 and KemP256HkdfSha256 are the
// draft-02 registry values; KemMlkem768X25519 is a bonus hybrid
// post-quantum backend namespaced outside that registry (see DESIGN.md).
const (
	KemX25519HkdfSha256 KemID = 0x0020
	KemP256HkdfSha256   KemID = 0x0010
	KemMlkem768X25519   KemID = 0x2F01
)

// KDF identifiers.
const (
	KdfHkdfSha256 KdfID = 0x0001
	KdfHkdfSha384 KdfID = 0x0002
	KdfHkdfSha512 KdfID = 0x0003
)

// AEAD identifiers.
const (
	AeadAes128Gcm        AeadID = 0x0001
	AeadAes256Gcm        AeadID = 0x0002
	AeadChaCha20Poly1305 AeadID = 0x0003
)

// Suite is one HPKE ciphersuite: a fixed KEM, KDF, and AEAD, plus the suite
// id every labeled_extract/expand call in the key schedule mixes in.
// Construct with NewSuite; the zero Suite is not usable.
type Suite struct {
	KemID  KemID
	KdfID  KdfID
	AeadID AeadID

	kem     kem.Scheme
	kdf     kdf.Scheme
	aead    aead.Scheme
	suiteID []byte
}

func kdfByID(id KdfID) (kdf.Scheme, bool) {
	switch id {
	case KdfHkdfSha256:
		return kdf.HkdfSha256, true
	case KdfHkdfSha384:
		return kdf.HkdfSha384, true
	case KdfHkdfSha512:
		return kdf.HkdfSha512, true
	default:
		return nil, false
	}
}

func aeadByID(id AeadID) (aead.Scheme, bool) {
	switch id {
	case AeadAes128Gcm:
		return aead.AesGcm128, true
	case AeadAes256Gcm:
		return aead.AesGcm256, true
	case AeadChaCha20Poly1305:
		return aead.ChaCha20Poly1305, true
	default:
		return nil, false
	}
}

// NewSuite builds a Suite from its three registry identifiers, returning
// ErrInvalidEncoding if any of them names an algorithm this module doesn't
// implement.
func NewSuite(kemID KemID, kdfID KdfID, aeadID AeadID) (*Suite, error) {
	kemScheme, ok := kem.ByID(uint16(kemID))
	if !ok {
		return nil, fmt.Errorf("%w: unknown KEM id %#04x", ErrInvalidEncoding, uint16(kemID))
	}
	kdfScheme, ok := kdfByID(kdfID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown KDF id %#04x", ErrInvalidEncoding, uint16(kdfID))
	}
	aeadScheme, ok := aeadByID(aeadID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown AEAD id %#04x", ErrInvalidEncoding, uint16(aeadID))
	}

	suiteID := make([]byte, 0, 10)
	suiteID = append(suiteID, 'H', 'P', 'K', 'E')
	suiteID = append(suiteID, byte(kemID>>8), byte(kemID))
	suiteID = append(suiteID, byte(kdfID>>8), byte(kdfID))
	suiteID = append(suiteID, byte(aeadID>>8), byte(aeadID))

	return &Suite{
		KemID: kemID, KdfID: kdfID, AeadID: aeadID,
		kem: kemScheme, kdf: kdfScheme, aead: aeadScheme,
		suiteID: suiteID,
	}, nil
}

// GenerateKeyPair draws a fresh keypair for the suite's KEM from
// crypto/rand, suitable as a recipient keypair or, for the Auth modes, a
// sender keypair.
func (s *Suite) GenerateKeyPair() (kem.PrivateKey, kem.PublicKey, error) {
	return s.kem.GenerateKeyPair()
}

// DeserializePublicKey parses a wire-format public key for the suite's KEM.
func (s *Suite) DeserializePublicKey(raw []byte) (kem.PublicKey, error) {
	pk, err := s.kem.DeserializePublicKey(raw)
	if err != nil {
		return nil, translateErr(err)
	}
	return pk, nil
}

// DeserializePrivateKey parses a wire-format private key for the suite's KEM.
func (s *Suite) DeserializePrivateKey(raw []byte) (kem.PrivateKey, error) {
	sk, err := s.kem.DeserializePrivateKey(raw)
	if err != nil {
		return nil, translateErr(err)
	}
	return sk, nil
}
