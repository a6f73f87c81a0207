package hpke

import (
	"fmt"

	"github.com/hpke-go/hpke/internal/kdf"
)

// keySchedule implements KeySchedule from draft-irtf-cfrg-hpke-02 §6: it
// turns a KEM shared secret plus the caller's info/psk/psk_id into a
// encdecCtx ready to seal or open.
//
// draft-02 extracts the context's main secret under the label "psk_hash".
// RFC 9180 later renamed this step's label to "secret"; this module targets
// draft-02 specifically, so the original label is kept verbatim rather than
// silently updated (see SPEC_FULL.md §9 and DESIGN.md).
func (s *Suite) keySchedule(mode modeID, sharedSecret, info, psk, pskID []byte) (*encdecCtx, error) {
	if err := verifyPSKInputs(mode, psk, pskID); err != nil {
		return nil, err
	}

	pskIDHash := kdf.LabeledExtract(s.kdf, nil, s.suiteID, []byte("pskID_hash"), pskID)
	pskHash := kdf.LabeledExtract(s.kdf, nil, s.suiteID, []byte("psk_hash"), psk)
	infoHash := kdf.LabeledExtract(s.kdf, nil, s.suiteID, []byte("info_hash"), info)

	ksContext := make([]byte, 0, 1+len(pskIDHash)+len(pskHash)+len(infoHash))
	ksContext = append(ksContext, byte(mode))
	ksContext = append(ksContext, pskIDHash...)
	ksContext = append(ksContext, pskHash...)
	ksContext = append(ksContext, infoHash...)

	secret := kdf.LabeledExtract(s.kdf, sharedSecret, s.suiteID, []byte("psk_hash"), psk)

	key, err := kdf.LabeledExpand(s.kdf, secret, s.suiteID, []byte("key"), ksContext, s.aead.Nk())
	if err != nil {
		return nil, fmt.Errorf("%w: deriving key", ErrInvalidKdfLength)
	}
	baseNonce, err := kdf.LabeledExpand(s.kdf, secret, s.suiteID, []byte("nonce"), ksContext, s.aead.Nn())
	if err != nil {
		return nil, fmt.Errorf("%w: deriving base_nonce", ErrInvalidKdfLength)
	}
	exporterSecret, err := kdf.LabeledExpand(s.kdf, secret, s.suiteID, []byte("exp"), ksContext, s.kdf.Nh())
	if err != nil {
		return nil, fmt.Errorf("%w: deriving exporter_secret", ErrInvalidKdfLength)
	}

	return &encdecCtx{
		aeadScheme:     s.aead,
		kdfScheme:      s.kdf,
		suiteID:        s.suiteID,
		key:            key,
		baseNonce:      baseNonce,
		seq:            make([]byte, s.aead.Nn()),
		exporterSecret: exporterSecret,
	}, nil
}
