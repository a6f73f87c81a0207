package hpke

import (
	"fmt"

	"github.com/hpke-go/hpke/internal/aead"
	"github.com/hpke-go/hpke/internal/kdf"
)

// Sealer is the sender side of an HPKE encryption context.
type Sealer interface {
	// Seal encrypts pt, authenticating aad, and returns ciphertext with the
	// tag appended (idiomatic Go AEAD convention). Each call advances the
	// context's sequence counter; ErrSeqOverflow is returned once it has
	// been exhausted.
	Seal(aad, pt []byte) ([]byte, error)
	// SealDetached is Seal with the authentication tag split out, matching
	// the wire layout draft-irtf-cfrg-hpke-02 describes.
	SealDetached(aad, pt []byte) (ct, tag []byte, err error)
	// Export derives additional keying material from the context's
	// exporter_secret, independent of the sequence counter.
	Export(exporterContext []byte, length int) ([]byte, error)
}

// Opener is the recipient side of an HPKE encryption context.
type Opener interface {
	Open(aad, ct []byte) ([]byte, error)
	OpenDetached(aad, ct, tag []byte) ([]byte, error)
	Export(exporterContext []byte, length int) ([]byte, error)
}

// encdecCtx is the shared encryption-context state draft-irtf-cfrg-hpke-02
// §6.3 describes: a fixed key and base_nonce, a running sequence counter,
// and the exporter secret. sealerContext and openerContext wrap it to fix
// its polarity at the type level rather than with a runtime role flag,
// following circl/hpke's sealCtx/openCtx split over one encdecCtx.
type encdecCtx struct {
	aeadScheme aead.Scheme
	kdfScheme  kdf.Scheme
	suiteID    []byte

	key       []byte
	baseNonce []byte

	seq        []byte // big-endian counter, same width as baseNonce
	overflowed bool

	exporterSecret []byte
}

// nextNonce XORs the base_nonce with the current sequence counter, refusing
// to hand one out once the counter has overflowed.
func (c *encdecCtx) nextNonce() ([]byte, error) {
	if c.overflowed {
		return nil, ErrSeqOverflow
	}
	nonce := make([]byte, len(c.baseNonce))
	for i := range nonce {
		nonce[i] = c.baseNonce[i] ^ c.seq[i]
	}
	return nonce, nil
}

// advance increments the sequence counter by one, ripple-carrying across
// its full big-endian width. If the increment itself carries out of the
// counter's width, this was the last usable sequence number: overflowed is
// set now so every subsequent Seal/Open is refused up front, while the
// operation that just completed remains valid.
func (c *encdecCtx) advance() {
	carry := uint16(1)
	for i := len(c.seq) - 1; i >= 0; i-- {
		sum := uint16(c.seq[i]) + carry
		c.seq[i] = byte(sum)
		carry = sum >> 8
	}
	if carry != 0 {
		c.overflowed = true
	}
}

func (c *encdecCtx) seal(aad, pt []byte) ([]byte, error) {
	nonce, err := c.nextNonce()
	if err != nil {
		return nil, err
	}
	ct, err := c.aeadScheme.Seal(c.key, nonce, aad, pt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryption, err)
	}
	c.advance()
	return ct, nil
}

func (c *encdecCtx) open(aad, ct []byte) ([]byte, error) {
	nonce, err := c.nextNonce()
	if err != nil {
		return nil, err
	}
	pt, err := c.aeadScheme.Open(c.key, nonce, aad, ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTag, err)
	}
	c.advance()
	return pt, nil
}

func (c *encdecCtx) export(exporterContext []byte, length int) ([]byte, error) {
	out, err := kdf.LabeledExpand(c.kdfScheme, c.exporterSecret, c.suiteID, []byte("sec"), exporterContext, length)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKdfLength, err)
	}
	return out, nil
}

// sealerContext is the sender-side view of an encdecCtx.
type sealerContext struct{ *encdecCtx }

func (s *sealerContext) Seal(aad, pt []byte) ([]byte, error) { return s.seal(aad, pt) }

func (s *sealerContext) SealDetached(aad, pt []byte) (ct, tag []byte, err error) {
	sealed, err := s.seal(aad, pt)
	if err != nil {
		return nil, nil, err
	}
	nt := s.aeadScheme.Nt()
	return sealed[:len(sealed)-nt], sealed[len(sealed)-nt:], nil
}

func (s *sealerContext) Export(exporterContext []byte, length int) ([]byte, error) {
	return s.export(exporterContext, length)
}

// openerContext is the recipient-side view of an encdecCtx.
type openerContext struct{ *encdecCtx }

func (o *openerContext) Open(aad, ct []byte) ([]byte, error) { return o.open(aad, ct) }

func (o *openerContext) OpenDetached(aad, ct, tag []byte) ([]byte, error) {
	combined := make([]byte, 0, len(ct)+len(tag))
	combined = append(combined, ct...)
	combined = append(combined, tag...)
	return o.open(aad, combined)
}

func (o *openerContext) Export(exporterContext []byte, length int) ([]byte, error) {
	return o.export(exporterContext, length)
}
