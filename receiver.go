package hpke

import (
	"fmt"

	"github.com/hpke-go/hpke/internal/kem"
)

// SetupBaseR runs the recipient side of the Base mode, decapsulating enc
// with skR and returning an Opener bound to the resulting context.
func (s *Suite) SetupBaseR(enc []byte, skR kem.PrivateKey, info []byte) (Opener, error) {
	sharedSecret, err := s.kem.Decapsulate(enc, skR)
	if err != nil {
		return nil, translateErr(err)
	}
	ctx, err := s.keySchedule(modeBase, sharedSecret, info, nil, nil)
	if err != nil {
		return nil, err
	}
	return &openerContext{ctx}, nil
}

// SetupPSKR runs the recipient side of the Psk mode; psk and pskID must
// match the values the sender used.
func (s *Suite) SetupPSKR(enc []byte, skR kem.PrivateKey, info, psk, pskID []byte) (Opener, error) {
	sharedSecret, err := s.kem.Decapsulate(enc, skR)
	if err != nil {
		return nil, translateErr(err)
	}
	ctx, err := s.keySchedule(modePsk, sharedSecret, info, psk, pskID)
	if err != nil {
		return nil, err
	}
	return &openerContext{ctx}, nil
}

// SetupAuthR runs the recipient side of the Auth mode, verifying that the
// message was encapsulated using pkS's matching private key.
func (s *Suite) SetupAuthR(enc []byte, skR kem.PrivateKey, pkS kem.PublicKey, info []byte) (Opener, error) {
	auth, ok := s.kem.(kem.AuthScheme)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAuthUnsupported, s.kem.Name())
	}
	sharedSecret, err := auth.AuthDecapsulate(enc, skR, pkS)
	if err != nil {
		return nil, translateErr(err)
	}
	ctx, err := s.keySchedule(modeAuth, sharedSecret, info, nil, nil)
	if err != nil {
		return nil, err
	}
	return &openerContext{ctx}, nil
}

// SetupAuthPSKR combines Auth and Psk on the recipient side.
func (s *Suite) SetupAuthPSKR(enc []byte, skR kem.PrivateKey, pkS kem.PublicKey, info, psk, pskID []byte) (Opener, error) {
	auth, ok := s.kem.(kem.AuthScheme)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAuthUnsupported, s.kem.Name())
	}
	sharedSecret, err := auth.AuthDecapsulate(enc, skR, pkS)
	if err != nil {
		return nil, translateErr(err)
	}
	ctx, err := s.keySchedule(modeAuthPsk, sharedSecret, info, psk, pskID)
	if err != nil {
		return nil, err
	}
	return &openerContext{ctx}, nil
}
