package hpke

import "github.com/hpke-go/hpke/internal/kem"

// SealBase is the single-shot convenience form of SetupBaseS followed by
// one Seal call, for callers who only ever send one message per
// recipient key and don't need a long-lived Sealer.
func (s *Suite) SealBase(pkR kem.PublicKey, info, aad, pt []byte) (enc, ct []byte, err error) {
	enc, sealer, err := s.SetupBaseS(pkR, info)
	if err != nil {
		return nil, nil, err
	}
	ct, err = sealer.Seal(aad, pt)
	if err != nil {
		return nil, nil, err
	}
	return enc, ct, nil
}

// OpenBase is the single-shot counterpart to SealBase.
func (s *Suite) OpenBase(enc []byte, skR kem.PrivateKey, info, aad, ct []byte) ([]byte, error) {
	opener, err := s.SetupBaseR(enc, skR, info)
	if err != nil {
		return nil, err
	}
	return opener.Open(aad, ct)
}

// SealPSK and OpenPSK are the single-shot forms of the Psk mode.
func (s *Suite) SealPSK(pkR kem.PublicKey, info, psk, pskID, aad, pt []byte) (enc, ct []byte, err error) {
	enc, sealer, err := s.SetupPSKS(pkR, info, psk, pskID)
	if err != nil {
		return nil, nil, err
	}
	ct, err = sealer.Seal(aad, pt)
	if err != nil {
		return nil, nil, err
	}
	return enc, ct, nil
}

func (s *Suite) OpenPSK(enc []byte, skR kem.PrivateKey, info, psk, pskID, aad, ct []byte) ([]byte, error) {
	opener, err := s.SetupPSKR(enc, skR, info, psk, pskID)
	if err != nil {
		return nil, err
	}
	return opener.Open(aad, ct)
}
