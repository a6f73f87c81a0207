package kem

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/hpke-go/hpke/internal/kdf"
	"github.com/hpke-go/hpke/internal/kex"
)

// dhkem implements Scheme and AuthScheme by combining a raw Diffie-Hellman
// kex.Scheme with a kdf.Scheme, following
// draft-irtf-cfrg-hpke-02 §6.1's DHKEM construction:
//
//	dh = DH(skE, pkR)                        (Auth: dh || DH(skS, pkR))
//	kem_context = enc || pkRm [|| pkSm]
//	prk = LabeledExtract(zero(Nh), "dh", dh)
//	shared_secret = LabeledExpand(prk, "prk", kem_context, Nsecret)
//
// Grounded on DataDog/go-secure-sdk's crypto/kem.dhkem type, which wires the
// same curve-agnostic shape on top of crypto/ecdh.
type dhkem struct {
	kemID   uint16
	kex     kex.Scheme
	kdf     kdf.Scheme
	nSecret int
}

// NewDHKEM builds a DHKEM Scheme over the given raw Diffie-Hellman curve and
// HKDF hash, tagged with the registry kemID used in the suite id and in
// labeled extract/expand calls.
func NewDHKEM(kemID uint16, kx kex.Scheme, kd kdf.Scheme, nSecret int) AuthScheme {
	return &dhkem{kemID: kemID, kex: kx, kdf: kd, nSecret: nSecret}
}

func (k *dhkem) Name() string             { return "DHKEM(" + k.kex.Name() + ", " + k.kdf.Name() + ")" }
func (k *dhkem) PublicKeySize() int       { return k.kex.PublicKeySize() }
func (k *dhkem) PrivateKeySize() int      { return k.kex.PrivateKeySize() }
func (k *dhkem) EncapsulationSize() int   { return k.kex.PublicKeySize() }
func (k *dhkem) SecretSize() int          { return k.nSecret }

// suiteID returns "KEM" || I2OSP(kem_id, 2), the suite id DHKEM's own
// internal labeled extract/expand calls use (distinct from the full HPKE
// suite id used by the mode/key-schedule layer).
func (k *dhkem) suiteID() []byte {
	out := make([]byte, 5)
	out[0], out[1], out[2] = 'K', 'E', 'M'
	binary.BigEndian.PutUint16(out[3:5], k.kemID)
	return out
}

func (k *dhkem) GenerateKeyPair() (PrivateKey, PublicKey, error) {
	sk, pk, err := k.kex.GenerateKeyPair(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("kem: %w", err)
	}
	return sk, pk, nil
}

func (k *dhkem) DeserializePublicKey(raw []byte) (PublicKey, error) {
	return k.kex.DeserializePublicKey(raw)
}

func (k *dhkem) DeserializePrivateKey(raw []byte) (PrivateKey, error) {
	return k.kex.DeserializePrivateKey(raw)
}

func (k *dhkem) extractAndExpand(dh, kemContext []byte) ([]byte, error) {
	prk := kdf.LabeledExtract(k.kdf, nil, k.suiteID(), []byte("dh"), dh)
	return kdf.LabeledExpand(k.kdf, prk, k.suiteID(), []byte("prk"), kemContext, k.nSecret)
}

func (k *dhkem) Encapsulate(pkR PublicKey) (ss, enc []byte, err error) {
	skE, pkE, err := k.kex.GenerateKeyPair(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncap, err)
	}
	return k.encap(skE, pkE, pkR.(kex.PublicKey))
}

func (k *dhkem) encap(skE kex.PrivateKey, pkE kex.PublicKey, pkR kex.PublicKey) (ss, enc []byte, err error) {
	dh, err := k.kex.DH(skE, pkR)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncap, err)
	}

	enc = pkE.Bytes()
	kemContext := append(append([]byte{}, enc...), pkR.Bytes()...)

	ss, err = k.extractAndExpand(dh, kemContext)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncap, err)
	}
	return ss, enc, nil
}

func (k *dhkem) Decapsulate(enc []byte, skR PrivateKey) ([]byte, error) {
	if len(enc) != k.kex.PublicKeySize() {
		return nil, fmt.Errorf("%w: invalid encapsulation size", ErrDecap)
	}
	pkE, err := k.kex.DeserializePublicKey(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecap, err)
	}
	skRx := skR.(kex.PrivateKey)
	dh, err := k.kex.DH(skRx, pkE)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecap, err)
	}

	pkR := k.kex.SkToPk(skRx)
	kemContext := append(append([]byte{}, enc...), pkR.Bytes()...)

	ss, err := k.extractAndExpand(dh, kemContext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecap, err)
	}
	return ss, nil
}

func (k *dhkem) AuthEncapsulate(pkR PublicKey, skS PrivateKey) (ss, enc []byte, err error) {
	skE, pkE, err := k.kex.GenerateKeyPair(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncap, err)
	}
	pkRx := pkR.(kex.PublicKey)
	skSx := skS.(kex.PrivateKey)

	dhE, err := k.kex.DH(skE, pkRx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncap, err)
	}
	dhS, err := k.kex.DH(skSx, pkRx)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncap, err)
	}
	dh := append(append([]byte{}, dhE...), dhS...)

	enc = pkE.Bytes()
	pkS := k.kex.SkToPk(skSx)
	kemContext := append(append([]byte{}, enc...), pkRx.Bytes()...)
	kemContext = append(kemContext, pkS.Bytes()...)

	ss, err = k.extractAndExpand(dh, kemContext)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrEncap, err)
	}
	return ss, enc, nil
}

func (k *dhkem) AuthDecapsulate(enc []byte, skR PrivateKey, pkS PublicKey) ([]byte, error) {
	if len(enc) != k.kex.PublicKeySize() {
		return nil, fmt.Errorf("%w: invalid encapsulation size", ErrDecap)
	}
	pkE, err := k.kex.DeserializePublicKey(enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecap, err)
	}
	skRx := skR.(kex.PrivateKey)
	pkSx := pkS.(kex.PublicKey)

	dhE, err := k.kex.DH(skRx, pkE)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecap, err)
	}
	dhS, err := k.kex.DH(skRx, pkSx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecap, err)
	}
	dh := append(append([]byte{}, dhE...), dhS...)

	pkR := k.kex.SkToPk(skRx)
	kemContext := append(append([]byte{}, enc...), pkR.Bytes()...)
	kemContext = append(kemContext, pkSx.Bytes()...)

	ss, err := k.extractAndExpand(dh, kemContext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecap, err)
	}
	return ss, nil
}
