package hpke

import (
	"fmt"

	"github.com/hpke-go/hpke/internal/kem"
)

// SetupBaseS runs the sender side of the Base mode: no pre-shared key, no
// sender authentication. It returns the encapsulated key enc to send to the
// recipient alongside any sealed messages, and a Sealer bound to the
// resulting context.
func (s *Suite) SetupBaseS(pkR kem.PublicKey, info []byte) (enc []byte, sealer Sealer, err error) {
	sharedSecret, enc, err := s.kem.Encapsulate(pkR)
	if err != nil {
		return nil, nil, translateErr(err)
	}
	ctx, err := s.keySchedule(modeBase, sharedSecret, info, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	return enc, &sealerContext{ctx}, nil
}

// SetupPSKS runs the sender side of the Psk mode: the pre-shared key psk
// (identified by pskID) binds both ends to a shared secret neither the KEM
// nor the info string alone provides.
func (s *Suite) SetupPSKS(pkR kem.PublicKey, info, psk, pskID []byte) (enc []byte, sealer Sealer, err error) {
	sharedSecret, enc, err := s.kem.Encapsulate(pkR)
	if err != nil {
		return nil, nil, translateErr(err)
	}
	ctx, err := s.keySchedule(modePsk, sharedSecret, info, psk, pskID)
	if err != nil {
		return nil, nil, err
	}
	return enc, &sealerContext{ctx}, nil
}

// SetupAuthS runs the sender side of the Auth mode: skS additionally proves
// the sender's identity to the recipient. Returns ErrAuthUnsupported if the
// suite's KEM has no Auth mode (the bonus hybrid backend).
func (s *Suite) SetupAuthS(pkR kem.PublicKey, skS kem.PrivateKey, info []byte) (enc []byte, sealer Sealer, err error) {
	auth, ok := s.kem.(kem.AuthScheme)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrAuthUnsupported, s.kem.Name())
	}
	sharedSecret, enc, err := auth.AuthEncapsulate(pkR, skS)
	if err != nil {
		return nil, nil, translateErr(err)
	}
	ctx, err := s.keySchedule(modeAuth, sharedSecret, info, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	return enc, &sealerContext{ctx}, nil
}

// SetupAuthPSKS combines Auth and Psk: both a pre-shared key and a sender
// keypair are required.
func (s *Suite) SetupAuthPSKS(pkR kem.PublicKey, skS kem.PrivateKey, info, psk, pskID []byte) (enc []byte, sealer Sealer, err error) {
	auth, ok := s.kem.(kem.AuthScheme)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrAuthUnsupported, s.kem.Name())
	}
	sharedSecret, enc, err := auth.AuthEncapsulate(pkR, skS)
	if err != nil {
		return nil, nil, translateErr(err)
	}
	ctx, err := s.keySchedule(modeAuthPsk, sharedSecret, info, psk, pskID)
	if err != nil {
		return nil, nil, err
	}
	return enc, &sealerContext{ctx}, nil
}
